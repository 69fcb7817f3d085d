package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/pkruglov/chainvault-go/models"
)

// SecretsService is the caller-facing facade over the local encryption
// subsystem. Plaintext and blobs are strings because the surrounding SDK
// moves them through JSON bodies; the passphrase argument on every method
// overrides the default passphrase configured at construction when
// non-empty.
//
// All methods are side-effect free: no network, no disk, no logging of
// secret material.
type SecretsService interface {
	// EncryptSecret seals plaintext with the authenticated scheme and
	// returns the encoded blob. This is the primary encryption method.
	EncryptSecret(plaintext, passphrase string) (string, error)

	// DecryptSecret opens a blob produced by EncryptSecret.
	DecryptSecret(blob, passphrase string) (string, error)

	// EncryptSecretLegacy seals plaintext with the legacy
	// non-authenticated scheme. Kept for consumers that still decode the
	// old format; prefer EncryptSecret.
	EncryptSecretLegacy(plaintext, passphrase string) (string, error)

	// DecryptSecretLegacy opens a blob produced by an older release
	// under the legacy scheme. Never applied to authenticated blobs.
	DecryptSecretLegacy(blob, passphrase string) (string, error)
}

// WalletService manages custodial wallets, encrypting private key material
// locally before it crosses the network and decrypting it locally after
// export.
type WalletService interface {
	// Create asks the API to generate a wallet on the given chain.
	Create(ctx context.Context, chain models.Chain, label string) (models.Wallet, error)

	// Import encrypts plainKey locally under passphrase and registers
	// the resulting blob with the API. plainKey never leaves the process
	// unencrypted.
	Import(ctx context.Context, chain models.Chain, label, plainKey, passphrase string) (models.Wallet, error)

	// Export fetches the wallet's encrypted key blob and decrypts it
	// locally. Returns the plaintext private key.
	Export(ctx context.Context, walletID, passphrase string) (string, error)

	// ExportRaw fetches the wallet's encrypted key blob without
	// decrypting it, for callers that store the blob as-is.
	ExportRaw(ctx context.Context, walletID string) (string, error)

	// Balance fetches the wallet's confirmed and pending balance.
	Balance(ctx context.Context, walletID string) (models.Balance, error)
}

// TransferService submits coin transfers and tracks the ones that have not
// reached a final status yet. Tracking is in-memory only and scoped to the
// service instance.
type TransferService interface {
	// Send submits a transfer. A missing idempotency key is filled in
	// with a fresh UUID before the request is built.
	Send(ctx context.Context, req models.TransferRequest) (models.Transfer, error)

	// Refresh polls the API for every tracked non-final transfer and
	// returns the transfers whose status changed. Finalized transfers
	// are dropped from tracking.
	Refresh(ctx context.Context) ([]models.Transfer, error)

	// Pending returns the currently tracked non-final transfers.
	Pending() []models.Transfer
}

// MarketService exposes the read-only lookup endpoints.
type MarketService interface {
	// Price fetches a fiat price quote for one coin.
	Price(ctx context.Context, chain models.Chain, fiat string) (models.Price, error)

	// ValidateAddress checks an address for well-formedness on a chain.
	ValidateAddress(ctx context.Context, chain models.Chain, address string) (models.AddressValidation, error)
}

// WebhookService manages webhook subscriptions.
type WebhookService interface {
	// Register subscribes a callback URL to an event. A missing client
	// reference is filled in with a fresh UUID.
	Register(ctx context.Context, req models.RegisterWebhookRequest) (models.Webhook, error)

	// List returns all subscriptions owned by the configured API key.
	List(ctx context.Context) ([]models.Webhook, error)

	// Delete removes a subscription.
	Delete(ctx context.Context, webhookID string) error
}
