// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kruglov

// Package adapter provides the transport layer for communicating with the
// ChainVault multi-blockchain transaction API.
//
// The primary abstraction is [ChainVaultAdapter], which decouples the
// service layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
//
// The adapter performs no retries and no backoff: a failed request is
// surfaced to the caller as-is.
package adapter

import (
	"context"

	"github.com/pkruglov/chainvault-go/models"
)

// ChainVaultAdapter defines transport-agnostic communication with the
// ChainVault API. Implementations are responsible for serialisation,
// API-key and bearer-token header management, request body signing, and
// mapping transport-level errors to the sentinel values defined in this
// package.
//
// Encrypted key blobs pass through the adapter as opaque strings; the
// adapter never encrypts, decrypts, or inspects them.
type ChainVaultAdapter interface {
	// Authenticate exchanges the configured API key for a session bearer
	// token and stores it for subsequent requests. Called automatically
	// by authenticated operations when no valid token is held.
	Authenticate(ctx context.Context) error

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if none has been obtained yet.
	Token() string

	// CreateWallet asks the API to generate a new custodial wallet on the
	// given chain.
	CreateWallet(ctx context.Context, req models.CreateWalletRequest) (models.Wallet, error)

	// ImportWallet registers an externally generated private key with the
	// API. req.EncryptedKey must already be a locally encrypted blob.
	ImportWallet(ctx context.Context, req models.ImportWalletRequest) (models.Wallet, error)

	// ExportWallet retrieves the encrypted private key blob of a wallet.
	// The blob is returned as stored; decryption happens locally.
	ExportWallet(ctx context.Context, req models.ExportWalletRequest) (models.ExportWalletResponse, error)

	// GetBalance fetches the confirmed and pending balance of a wallet.
	GetBalance(ctx context.Context, walletID string) (models.Balance, error)

	// SendTransfer submits a coin transfer. The idempotency key in req is
	// also sent as the Idempotency-Key header; resubmitting the same key
	// returns the original transfer instead of double-spending.
	SendTransfer(ctx context.Context, req models.TransferRequest) (models.Transfer, error)

	// GetTransfer fetches the current state of a submitted transfer.
	GetTransfer(ctx context.Context, transferID string) (models.Transfer, error)

	// GetPrice fetches a fiat price quote for one coin.
	GetPrice(ctx context.Context, chain models.Chain, fiat string) (models.Price, error)

	// ValidateAddress asks the API whether an address is well-formed for
	// the given chain.
	ValidateAddress(ctx context.Context, req models.ValidateAddressRequest) (models.AddressValidation, error)

	// RegisterWebhook subscribes a callback URL to a server-side event.
	RegisterWebhook(ctx context.Context, req models.RegisterWebhookRequest) (models.Webhook, error)

	// ListWebhooks returns all webhook subscriptions owned by the API key.
	ListWebhooks(ctx context.Context) ([]models.Webhook, error)

	// DeleteWebhook removes a webhook subscription.
	DeleteWebhook(ctx context.Context, webhookID string) error
}
