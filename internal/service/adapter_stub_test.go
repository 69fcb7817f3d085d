package service_test

import (
	"context"

	"github.com/pkruglov/chainvault-go/models"
)

// stubAdapter implements adapter.ChainVaultAdapter with overridable
// function fields, so each test wires only the calls it expects.
type stubAdapter struct {
	authenticateFn    func(ctx context.Context) error
	createWalletFn    func(ctx context.Context, req models.CreateWalletRequest) (models.Wallet, error)
	importWalletFn    func(ctx context.Context, req models.ImportWalletRequest) (models.Wallet, error)
	exportWalletFn    func(ctx context.Context, req models.ExportWalletRequest) (models.ExportWalletResponse, error)
	getBalanceFn      func(ctx context.Context, walletID string) (models.Balance, error)
	sendTransferFn    func(ctx context.Context, req models.TransferRequest) (models.Transfer, error)
	getTransferFn     func(ctx context.Context, transferID string) (models.Transfer, error)
	getPriceFn        func(ctx context.Context, chain models.Chain, fiat string) (models.Price, error)
	validateAddressFn func(ctx context.Context, req models.ValidateAddressRequest) (models.AddressValidation, error)
	registerWebhookFn func(ctx context.Context, req models.RegisterWebhookRequest) (models.Webhook, error)
	listWebhooksFn    func(ctx context.Context) ([]models.Webhook, error)
	deleteWebhookFn   func(ctx context.Context, webhookID string) error
}

func (s *stubAdapter) Authenticate(ctx context.Context) error {
	if s.authenticateFn != nil {
		return s.authenticateFn(ctx)
	}
	return nil
}

func (s *stubAdapter) Token() string { return "stub-token" }

func (s *stubAdapter) CreateWallet(ctx context.Context, req models.CreateWalletRequest) (models.Wallet, error) {
	return s.createWalletFn(ctx, req)
}

func (s *stubAdapter) ImportWallet(ctx context.Context, req models.ImportWalletRequest) (models.Wallet, error) {
	return s.importWalletFn(ctx, req)
}

func (s *stubAdapter) ExportWallet(ctx context.Context, req models.ExportWalletRequest) (models.ExportWalletResponse, error) {
	return s.exportWalletFn(ctx, req)
}

func (s *stubAdapter) GetBalance(ctx context.Context, walletID string) (models.Balance, error) {
	return s.getBalanceFn(ctx, walletID)
}

func (s *stubAdapter) SendTransfer(ctx context.Context, req models.TransferRequest) (models.Transfer, error) {
	return s.sendTransferFn(ctx, req)
}

func (s *stubAdapter) GetTransfer(ctx context.Context, transferID string) (models.Transfer, error) {
	return s.getTransferFn(ctx, transferID)
}

func (s *stubAdapter) GetPrice(ctx context.Context, chain models.Chain, fiat string) (models.Price, error) {
	return s.getPriceFn(ctx, chain, fiat)
}

func (s *stubAdapter) ValidateAddress(ctx context.Context, req models.ValidateAddressRequest) (models.AddressValidation, error) {
	return s.validateAddressFn(ctx, req)
}

func (s *stubAdapter) RegisterWebhook(ctx context.Context, req models.RegisterWebhookRequest) (models.Webhook, error) {
	return s.registerWebhookFn(ctx, req)
}

func (s *stubAdapter) ListWebhooks(ctx context.Context) ([]models.Webhook, error) {
	return s.listWebhooksFn(ctx)
}

func (s *stubAdapter) DeleteWebhook(ctx context.Context, webhookID string) error {
	return s.deleteWebhookFn(ctx, webhookID)
}
