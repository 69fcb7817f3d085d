package service

import (
	"context"
	"fmt"

	"github.com/pkruglov/chainvault-go/internal/adapter"
	"github.com/pkruglov/chainvault-go/internal/logger"
	"github.com/pkruglov/chainvault-go/models"
)

type walletService struct {
	adapter adapter.ChainVaultAdapter
	secrets SecretsService
	logger  *logger.Logger
}

// NewWalletService constructs a [WalletService] over the given adapter and
// secrets facade.
func NewWalletService(ad adapter.ChainVaultAdapter, secrets SecretsService, log *logger.Logger) WalletService {
	return &walletService{adapter: ad, secrets: secrets, logger: log}
}

// Create implements [WalletService].
func (w *walletService) Create(ctx context.Context, chain models.Chain, label string) (models.Wallet, error) {
	if !chain.Valid() {
		return models.Wallet{}, fmt.Errorf("%w: %s", ErrUnsupportedChain, chain)
	}

	wallet, err := w.adapter.CreateWallet(ctx, models.CreateWalletRequest{Chain: chain, Label: label})
	if err != nil {
		return models.Wallet{}, fmt.Errorf("create wallet: %w", err)
	}

	w.logger.Info().Str("chain", string(chain)).Str("wallet_id", wallet.WalletID).Msg("wallet created")
	return wallet, nil
}

// Import implements [WalletService]. The plaintext key is encrypted here,
// before the request body exists, so no outbound structure ever holds it.
func (w *walletService) Import(ctx context.Context, chain models.Chain, label, plainKey, passphrase string) (models.Wallet, error) {
	if !chain.Valid() {
		return models.Wallet{}, fmt.Errorf("%w: %s", ErrUnsupportedChain, chain)
	}

	blob, err := w.secrets.EncryptSecret(plainKey, passphrase)
	if err != nil {
		return models.Wallet{}, fmt.Errorf("import wallet: %w", err)
	}

	wallet, err := w.adapter.ImportWallet(ctx, models.ImportWalletRequest{
		Chain:        chain,
		Label:        label,
		EncryptedKey: blob,
	})
	if err != nil {
		return models.Wallet{}, fmt.Errorf("import wallet: %w", err)
	}

	w.logger.Info().Str("chain", string(chain)).Str("wallet_id", wallet.WalletID).Msg("wallet imported")
	return wallet, nil
}

// Export implements [WalletService].
func (w *walletService) Export(ctx context.Context, walletID, passphrase string) (string, error) {
	out, err := w.adapter.ExportWallet(ctx, models.ExportWalletRequest{WalletID: walletID})
	if err != nil {
		return "", fmt.Errorf("export wallet: %w", err)
	}

	plainKey, err := w.secrets.DecryptSecret(out.EncryptedKey, passphrase)
	if err != nil {
		return "", fmt.Errorf("export wallet: %w", err)
	}

	// Only the fact of the export is logged, never the key.
	w.logger.Info().Str("wallet_id", walletID).Msg("wallet key exported")
	return plainKey, nil
}

// ExportRaw implements [WalletService].
func (w *walletService) ExportRaw(ctx context.Context, walletID string) (string, error) {
	out, err := w.adapter.ExportWallet(ctx, models.ExportWalletRequest{WalletID: walletID})
	if err != nil {
		return "", fmt.Errorf("export wallet: %w", err)
	}
	return out.EncryptedKey, nil
}

// Balance implements [WalletService].
func (w *walletService) Balance(ctx context.Context, walletID string) (models.Balance, error) {
	balance, err := w.adapter.GetBalance(ctx, walletID)
	if err != nil {
		return models.Balance{}, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}
