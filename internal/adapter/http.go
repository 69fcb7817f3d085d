package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkruglov/chainvault-go/internal/config"
	"github.com/pkruglov/chainvault-go/internal/logger"
	"github.com/pkruglov/chainvault-go/internal/utils"
	"github.com/pkruglov/chainvault-go/models"
)

// tokenLeeway is how close to expiry a session token may get before the
// adapter re-authenticates instead of spending a request on a certain 401.
const tokenLeeway = 30 * time.Second

type httpChainVaultAdapter struct {
	client *utils.HTTPClient

	apiKey     string
	signingKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdapter constructs an HTTP/REST implementation of
// [ChainVaultAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL, configures the underlying HTTP client with the
// resolved base URL, the request timeout, and the X-Api-Key header, and
// initialises the shared HMAC hasher pool when a signing key is configured.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPAdapter(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (ChainVaultAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("X-Api-Key", appCfg.APIKey)

	if appCfg.SigningKey != "" {
		utils.InitHasherPool(appCfg.SigningKey)
	}

	return &httpChainVaultAdapter{
		client:     client,
		apiKey:     appCfg.APIKey,
		signingKey: appCfg.SigningKey,
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Authenticate implements [ChainVaultAdapter]. It POSTs to
// POST /api/v1/auth/token; the API key travels in the X-Api-Key header set
// on the client. On success the returned bearer token is stored for
// subsequent authenticated requests.
func (h *httpChainVaultAdapter) Authenticate(ctx context.Context) error {
	var tr models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&tr).
		Post("/api/v1/auth/token")
	if err != nil {
		return fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if tr.AccessToken == "" {
		return fmt.Errorf("authenticate: empty access token in response")
	}

	h.setToken(tr.AccessToken)
	return nil
}

// Token implements [ChainVaultAdapter]. It returns the bearer token
// currently held by the adapter, or an empty string if none has been set.
func (h *httpChainVaultAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpChainVaultAdapter) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// CreateWallet implements [ChainVaultAdapter]. POST /api/v1/wallet.
func (h *httpChainVaultAdapter) CreateWallet(ctx context.Context, req models.CreateWalletRequest) (models.Wallet, error) {
	var wallet models.Wallet

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Wallet{}, err
	}
	if err = h.signBody(r, req); err != nil {
		return models.Wallet{}, err
	}

	resp, err := r.SetResult(&wallet).Post("/api/v1/wallet")
	if err != nil {
		return models.Wallet{}, fmt.Errorf("create wallet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wallet{}, err
	}

	return wallet, nil
}

// ImportWallet implements [ChainVaultAdapter]. POST /api/v1/wallet/import.
// req.EncryptedKey is passed through opaque; the plaintext key never
// reaches this layer.
func (h *httpChainVaultAdapter) ImportWallet(ctx context.Context, req models.ImportWalletRequest) (models.Wallet, error) {
	var wallet models.Wallet

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Wallet{}, err
	}
	if err = h.signBody(r, req); err != nil {
		return models.Wallet{}, err
	}

	resp, err := r.SetResult(&wallet).Post("/api/v1/wallet/import")
	if err != nil {
		return models.Wallet{}, fmt.Errorf("import wallet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wallet{}, err
	}

	return wallet, nil
}

// ExportWallet implements [ChainVaultAdapter]. POST /api/v1/wallet/export.
func (h *httpChainVaultAdapter) ExportWallet(ctx context.Context, req models.ExportWalletRequest) (models.ExportWalletResponse, error) {
	var out models.ExportWalletResponse

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.ExportWalletResponse{}, err
	}
	if err = h.signBody(r, req); err != nil {
		return models.ExportWalletResponse{}, err
	}

	resp, err := r.SetResult(&out).Post("/api/v1/wallet/export")
	if err != nil {
		return models.ExportWalletResponse{}, fmt.Errorf("export wallet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExportWalletResponse{}, err
	}

	return out, nil
}

// GetBalance implements [ChainVaultAdapter]. GET /api/v1/wallet/{id}/balance.
func (h *httpChainVaultAdapter) GetBalance(ctx context.Context, walletID string) (models.Balance, error) {
	var balance models.Balance

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Balance{}, err
	}

	resp, err := r.
		SetPathParam("walletID", walletID).
		SetResult(&balance).
		Get("/api/v1/wallet/{walletID}/balance")
	if err != nil {
		return models.Balance{}, fmt.Errorf("get balance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Balance{}, err
	}

	return balance, nil
}

// SendTransfer implements [ChainVaultAdapter]. POST /api/v1/transfer. The
// idempotency key is duplicated into the Idempotency-Key header so proxies
// can dedupe without reading the body.
func (h *httpChainVaultAdapter) SendTransfer(ctx context.Context, req models.TransferRequest) (models.Transfer, error) {
	var transfer models.Transfer

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Transfer{}, err
	}
	if err = h.signBody(r, req); err != nil {
		return models.Transfer{}, err
	}

	resp, err := r.
		SetHeader("Idempotency-Key", req.IdempotencyKey).
		SetResult(&transfer).
		Post("/api/v1/transfer")
	if err != nil {
		return models.Transfer{}, fmt.Errorf("send transfer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transfer{}, err
	}

	return transfer, nil
}

// GetTransfer implements [ChainVaultAdapter]. GET /api/v1/transfer/{id}.
func (h *httpChainVaultAdapter) GetTransfer(ctx context.Context, transferID string) (models.Transfer, error) {
	var transfer models.Transfer

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Transfer{}, err
	}

	resp, err := r.
		SetPathParam("transferID", transferID).
		SetResult(&transfer).
		Get("/api/v1/transfer/{transferID}")
	if err != nil {
		return models.Transfer{}, fmt.Errorf("get transfer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transfer{}, err
	}

	return transfer, nil
}

// GetPrice implements [ChainVaultAdapter]. GET /api/v1/market/price.
func (h *httpChainVaultAdapter) GetPrice(ctx context.Context, chain models.Chain, fiat string) (models.Price, error) {
	var price models.Price

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Price{}, err
	}

	resp, err := r.
		SetQueryParam("chain", string(chain)).
		SetQueryParam("fiat", fiat).
		SetResult(&price).
		Get("/api/v1/market/price")
	if err != nil {
		return models.Price{}, fmt.Errorf("get price request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Price{}, err
	}

	return price, nil
}

// ValidateAddress implements [ChainVaultAdapter]. POST /api/v1/address/validate.
func (h *httpChainVaultAdapter) ValidateAddress(ctx context.Context, req models.ValidateAddressRequest) (models.AddressValidation, error) {
	var validation models.AddressValidation

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.AddressValidation{}, err
	}
	if err = h.signBody(r, req); err != nil {
		return models.AddressValidation{}, err
	}

	resp, err := r.SetResult(&validation).Post("/api/v1/address/validate")
	if err != nil {
		return models.AddressValidation{}, fmt.Errorf("validate address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AddressValidation{}, err
	}

	return validation, nil
}

// RegisterWebhook implements [ChainVaultAdapter]. POST /api/v1/webhook.
func (h *httpChainVaultAdapter) RegisterWebhook(ctx context.Context, req models.RegisterWebhookRequest) (models.Webhook, error) {
	var webhook models.Webhook

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Webhook{}, err
	}
	if err = h.signBody(r, req); err != nil {
		return models.Webhook{}, err
	}

	resp, err := r.SetResult(&webhook).Post("/api/v1/webhook")
	if err != nil {
		return models.Webhook{}, fmt.Errorf("register webhook request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Webhook{}, err
	}

	return webhook, nil
}

// ListWebhooks implements [ChainVaultAdapter]. GET /api/v1/webhook.
func (h *httpChainVaultAdapter) ListWebhooks(ctx context.Context) ([]models.Webhook, error) {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := r.Get("/api/v1/webhook")
	if err != nil {
		return nil, fmt.Errorf("list webhooks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.ListWebhooksResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode list webhooks response: %w", err)
	}
	return lr.Webhooks, nil
}

// DeleteWebhook implements [ChainVaultAdapter]. DELETE /api/v1/webhook/{id}.
func (h *httpChainVaultAdapter) DeleteWebhook(ctx context.Context, webhookID string) error {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := r.
		SetPathParam("webhookID", webhookID).
		Delete("/api/v1/webhook/{webhookID}")
	if err != nil {
		return fmt.Errorf("delete webhook request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest returns a request carrying a valid bearer token,
// re-authenticating first when no token is held or the held one is within
// tokenLeeway of expiry.
func (h *httpChainVaultAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if token := h.Token(); token == "" || utils.TokenExpired(token, tokenLeeway) {
		if err := h.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token()), nil
}

// signBody marshals body onto the request and, when a signing key is
// configured, attaches the X-Signature HMAC header computed over the exact
// bytes that will be sent.
func (h *httpChainVaultAdapter) signBody(r *resty.Request, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	r.SetHeader("Content-Type", "application/json").SetBody(payload)
	if h.signingKey != "" {
		r.SetHeader("X-Signature", utils.Sign(payload))
	}
	return nil
}
