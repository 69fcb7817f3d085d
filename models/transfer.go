package models

import "time"

// TransferStatus enumerates the lifecycle states of a coin transfer as
// reported by the remote API.
type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferBroadcast TransferStatus = "broadcast"
	TransferConfirmed TransferStatus = "confirmed"
	TransferFailed    TransferStatus = "failed"
)

// Final reports whether the status is terminal and will not change on
// subsequent polls.
func (s TransferStatus) Final() bool {
	return s == TransferConfirmed || s == TransferFailed
}

// TransferRequest is the body of POST /api/v1/transfer. Amount is a decimal
// string in the chain's main unit. IdempotencyKey is generated client-side
// so a repeated request cannot double-spend.
type TransferRequest struct {
	Chain          Chain  `json:"chain"`
	FromWalletID   string `json:"from_wallet_id"`
	ToAddress      string `json:"to_address"`
	Amount         string `json:"amount"`
	FeeLevel       string `json:"fee_level,omitempty"` // slow | normal | fast
	IdempotencyKey string `json:"idempotency_key"`
}

// Transfer is the server-side record of a submitted transfer.
type Transfer struct {
	TransferID string         `json:"transfer_id"`
	Chain      Chain          `json:"chain"`
	TxID       string         `json:"tx_id,omitempty"`
	Status     TransferStatus `json:"status"`
	Amount     string         `json:"amount"`
	Fee        string         `json:"fee,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
