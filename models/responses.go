package models

// APIError is the error envelope the ChainVault API returns with any non-2xx
// status. Message is safe to show to users; Code is a machine-readable
// identifier such as "insufficient_funds".
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TokenResponse is the body of POST /api/v1/auth/token. AccessToken is a
// JWT whose expiry the client inspects locally to decide when to
// re-authenticate; the signature is verified server-side only.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ListWebhooksResponse is the body of GET /api/v1/webhook.
type ListWebhooksResponse struct {
	Webhooks []Webhook `json:"webhooks"`
	Length   int       `json:"length"`
}
