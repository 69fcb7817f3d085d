package models

import "time"

// WebhookEvent names a server-side event a webhook can subscribe to.
type WebhookEvent string

const (
	EventIncomingTx    WebhookEvent = "incoming_tx"
	EventOutgoingTx    WebhookEvent = "outgoing_tx"
	EventConfirmations WebhookEvent = "confirmations"
)

// RegisterWebhookRequest is the body of POST /api/v1/webhook. ClientRef is a
// client-generated identifier echoed back in every delivery so the consumer
// can correlate notifications with its own records.
type RegisterWebhookRequest struct {
	Chain         Chain        `json:"chain"`
	Event         WebhookEvent `json:"event"`
	CallbackURL   string       `json:"callback_url"`
	Address       string       `json:"address,omitempty"`
	Confirmations int          `json:"confirmations,omitempty"`
	ClientRef     string       `json:"client_ref"`
}

// Webhook is a registered webhook subscription as stored by the server.
type Webhook struct {
	WebhookID     string       `json:"webhook_id"`
	Chain         Chain        `json:"chain"`
	Event         WebhookEvent `json:"event"`
	CallbackURL   string       `json:"callback_url"`
	Address       string       `json:"address,omitempty"`
	Confirmations int          `json:"confirmations,omitempty"`
	ClientRef     string       `json:"client_ref"`
	CreatedAt     time.Time    `json:"created_at"`
}
