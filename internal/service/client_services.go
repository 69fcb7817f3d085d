package service

import (
	"github.com/pkruglov/chainvault-go/internal/adapter"
	"github.com/pkruglov/chainvault-go/internal/config"
	"github.com/pkruglov/chainvault-go/internal/crypto"
	"github.com/pkruglov/chainvault-go/internal/logger"
)

// ClientServices is the composition root of the SDK's service layer.
type ClientServices struct {
	Secrets   SecretsService
	Wallets   WalletService
	Transfers TransferService
	Market    MarketService
	Webhooks  WebhookService
}

// NewClientServices wires every service over a shared adapter. The secrets
// facade picks up the default encryption passphrase from appCfg; per-call
// passphrases still take precedence.
func NewClientServices(ad adapter.ChainVaultAdapter, appCfg config.App, log *logger.Logger) *ClientServices {
	secrets := NewSecretsService(crypto.NewKeychainService(), appCfg.EncryptionPassphrase)

	return &ClientServices{
		Secrets:   secrets,
		Wallets:   NewWalletService(ad, secrets, log),
		Transfers: NewTransferService(ad, log),
		Market:    NewMarketService(ad),
		Webhooks:  NewWebhookService(ad),
	}
}
