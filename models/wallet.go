package models

import "time"

// Wallet represents a custodial wallet record held by the ChainVault API.
// The private key material never appears here in plaintext: the API only
// ever sees or returns it as an encrypted blob.
type Wallet struct {
	// WalletID is the server-assigned unique identifier of the wallet.
	WalletID string `json:"wallet_id"`

	// Chain identifies the blockchain network this wallet belongs to.
	Chain Chain `json:"chain"`

	// Label is an optional human-readable name for the wallet.
	Label string `json:"label,omitempty"`

	// Address is the on-chain deposit address of the wallet.
	Address string `json:"address"`

	// EncryptedKey carries the wallet's private key as an opaque encoded
	// blob produced by the local encryption subsystem. Present only in
	// import requests and export responses; empty everywhere else.
	EncryptedKey string `json:"encrypted_key,omitempty"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// CreateWalletRequest is the body of POST /api/v1/wallet.
type CreateWalletRequest struct {
	Chain Chain  `json:"chain"`
	Label string `json:"label,omitempty"`
}

// ImportWalletRequest is the body of POST /api/v1/wallet/import.
// EncryptedKey must be an encoded blob from the local encryption subsystem;
// the plaintext key must never be placed in this struct.
type ImportWalletRequest struct {
	Chain        Chain  `json:"chain"`
	Label        string `json:"label,omitempty"`
	EncryptedKey string `json:"encrypted_key"`
}

// ExportWalletRequest is the body of POST /api/v1/wallet/export.
type ExportWalletRequest struct {
	WalletID string `json:"wallet_id"`
}

// ExportWalletResponse is the body returned by POST /api/v1/wallet/export.
type ExportWalletResponse struct {
	WalletID     string `json:"wallet_id"`
	Chain        Chain  `json:"chain"`
	EncryptedKey string `json:"encrypted_key"`
}

// Balance is the confirmed and pending balance of a wallet, as reported by
// GET /api/v1/wallet/{id}/balance. Amounts are decimal strings in the
// chain's main unit to avoid floating-point loss.
type Balance struct {
	WalletID  string `json:"wallet_id"`
	Chain     Chain  `json:"chain"`
	Confirmed string `json:"confirmed"`
	Pending   string `json:"pending"`
}
