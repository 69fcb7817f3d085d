// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kruglov

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkruglov/chainvault-go/internal/config"
	"github.com/pkruglov/chainvault-go/internal/logger"
	"github.com/pkruglov/chainvault-go/internal/utils"
	"github.com/pkruglov/chainvault-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mintToken returns a signed JWT expiring in an hour. The adapter never
// verifies the signature, only the expiry claim.
func mintToken(t *testing.T) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

// tokenHandler answers the auth endpoint and delegates everything else.
func tokenHandler(t *testing.T, next http.HandlerFunc) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/token" {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.TokenResponse{
				AccessToken: mintToken(t),
				TokenType:   "Bearer",
				ExpiresIn:   3600,
			})
			return
		}
		next(w, r)
	}
}

func newTestAdapter(t *testing.T, serverURL, signingKey string) *httpChainVaultAdapter {
	t.Helper()
	adapterCfg := config.Adapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.App{APIKey: "test-api-key", SigningKey: signingKey}

	a, err := NewHTTPAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpChainVaultAdapter)
}

// ── Authenticate ────────────────────────────────────────────────────────────

func TestAuthenticate_StoresToken(t *testing.T) {
	srv := httptest.NewServer(tokenHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request to %s", r.URL.Path)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	require.NoError(t, a.Authenticate(context.Background()))
	assert.NotEmpty(t, a.Token())
}

func TestAuthenticate_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"bad_api_key","message":"unknown api key"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	err := a.Authenticate(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "unknown api key")
}

func TestAuthedRequest_ReusesValidToken(t *testing.T) {
	authCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/token" {
			authCalls++
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: mintToken(t)})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Balance{WalletID: "w1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.GetBalance(context.Background(), "w1")
	require.NoError(t, err)
	_, err = a.GetBalance(context.Background(), "w1")
	require.NoError(t, err)

	assert.Equal(t, 1, authCalls, "token must be obtained once and reused")
}

// ── Wallets ─────────────────────────────────────────────────────────────────

func TestCreateWallet_Success(t *testing.T) {
	want := models.Wallet{WalletID: "w-123", Chain: models.Bitcoin, Address: "bc1qxyz"}

	srv := httptest.NewServer(tokenHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/wallet", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("X-Api-Key"))
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		var req models.CreateWalletRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.Bitcoin, req.Chain)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.CreateWallet(context.Background(), models.CreateWalletRequest{Chain: models.Bitcoin})

	require.NoError(t, err)
	assert.Equal(t, want.WalletID, got.WalletID)
	assert.Equal(t, want.Address, got.Address)
}

func TestImportWallet_PassesEncryptedKeyOpaque(t *testing.T) {
	const blob = "b3BhcXVlIGVuY3J5cHRlZCBibG9i"

	srv := httptest.NewServer(tokenHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/wallet/import", r.URL.Path)

		var req models.ImportWalletRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, blob, req.EncryptedKey)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Wallet{WalletID: "w-9", Chain: req.Chain})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.ImportWallet(context.Background(), models.ImportWalletRequest{
		Chain:        models.Ethereum,
		EncryptedKey: blob,
	})

	require.NoError(t, err)
	assert.Equal(t, "w-9", got.WalletID)
}

func TestExportWallet_NotFound(t *testing.T) {
	srv := httptest.NewServer(tokenHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"unknown_wallet","message":"no such wallet"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.ExportWallet(context.Background(), models.ExportWalletRequest{WalletID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no such wallet")
}

// ── Transfers ───────────────────────────────────────────────────────────────

func TestSendTransfer_IdempotencyKeyAndSignature(t *testing.T) {
	const signingKey = "test-signing-key"

	srv := httptest.NewServer(tokenHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/transfer", r.URL.Path)
		assert.Equal(t, "idem-key-1", r.Header.Get("Idempotency-Key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, utils.SignString(string(body), signingKey), r.Header.Get("X-Signature"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Transfer{TransferID: "t-1", Status: models.TransferPending})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, signingKey)
	got, err := a.SendTransfer(context.Background(), models.TransferRequest{
		Chain:          models.Litecoin,
		FromWalletID:   "w-1",
		ToAddress:      "ltc1qabc",
		Amount:         "0.25",
		IdempotencyKey: "idem-key-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "t-1", got.TransferID)
	assert.Equal(t, models.TransferPending, got.Status)
}

func TestSendTransfer_Conflict(t *testing.T) {
	srv := httptest.NewServer(tokenHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"duplicate","message":"idempotency key replay"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.SendTransfer(context.Background(), models.TransferRequest{IdempotencyKey: "dup"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Lookups ─────────────────────────────────────────────────────────────────

func TestGetPrice_QueryParams(t *testing.T) {
	srv := httptest.NewServer(tokenHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/market/price", r.URL.Path)
		assert.Equal(t, "eth", r.URL.Query().Get("chain"))
		assert.Equal(t, "usd", r.URL.Query().Get("fiat"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Price{Chain: models.Ethereum, Fiat: "usd", Price: "2500.10"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.GetPrice(context.Background(), models.Ethereum, "usd")

	require.NoError(t, err)
	assert.Equal(t, "2500.10", got.Price)
}

func TestValidateAddress_Success(t *testing.T) {
	srv := httptest.NewServer(tokenHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/address/validate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AddressValidation{Chain: models.Tron, Address: "Txyz", Valid: false, Reason: "bad checksum"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.ValidateAddress(context.Background(), models.ValidateAddressRequest{Chain: models.Tron, Address: "Txyz"})

	require.NoError(t, err)
	assert.False(t, got.Valid)
	assert.Equal(t, "bad checksum", got.Reason)
}

// ── Webhooks ────────────────────────────────────────────────────────────────

func TestWebhookLifecycle(t *testing.T) {
	registered := models.Webhook{WebhookID: "wh-1", Chain: models.Bitcoin, Event: models.EventIncomingTx}

	srv := httptest.NewServer(tokenHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/webhook":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(registered)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/webhook":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.ListWebhooksResponse{Webhooks: []models.Webhook{registered}, Length: 1})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/webhook/wh-1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	ctx := context.Background()

	wh, err := a.RegisterWebhook(ctx, models.RegisterWebhookRequest{Chain: models.Bitcoin, Event: models.EventIncomingTx})
	require.NoError(t, err)
	assert.Equal(t, "wh-1", wh.WebhookID)

	list, err := a.ListWebhooks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "wh-1", list[0].WebhookID)

	require.NoError(t, a.DeleteWebhook(ctx, "wh-1"))
}

func TestNewHTTPAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPAdapter(config.Adapter{BaseURL: ""}, config.App{APIKey: "k"}, logger.Nop())
	assert.Error(t, err)
}
