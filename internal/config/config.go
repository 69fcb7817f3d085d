// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kruglov

package config

import (
	"time"
)

// Config is the top-level configuration container for the chainvault-go SDK.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings: API credentials and the
	// default encryption passphrase.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings (transfer-status polling).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIKey authenticates the SDK against the ChainVault API. Sent as
	// the X-Api-Key header on every request and exchanged for a session
	// token. Must be kept confidential.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// SigningKey is the optional HMAC-SHA256 secret for request body
	// signatures (X-Signature header). When empty, bodies are not signed.
	// Env: APP_SIGNING_KEY
	SigningKey string `env:"SIGNING_KEY"`

	// EncryptionPassphrase is the default passphrase for the local
	// encryption of exported private keys. A per-call passphrase always
	// takes precedence over this value. Never logged, never transmitted.
	// Env: APP_ENCRYPTION_PASSPHRASE
	EncryptionPassphrase string `env:"ENCRYPTION_PASSPHRASE"`
}

// Adapter holds settings for the outbound HTTP transport.
type Adapter struct {
	// BaseURL is the root endpoint of the ChainVault API
	// (e.g. "https://api.chainvault.io").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration for a single outbound
	// request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// PollInterval defines how often the transfer-status poller runs.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// GetConfig loads, merges, and validates the SDK configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *Config) validate() error {
	if cfg.App.APIKey == "" {
		return ErrInvalidAppConfigs
	}

	// RequestTimeout is optional: the adapter applies its own default.
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
