package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-u base URL of the ChainVault API
//	-api-key API key for the ChainVault API
//	-signing-key HMAC secret for request body signatures
//	-passphrase default encryption passphrase for exported keys
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-poll-interval transfer-status poll interval (e.g., "10s")
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var baseURL string
	var apiKey string
	var signingKey string
	var passphrase string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "u", "", "ChainVault API base URL")
	flag.StringVar(&apiKey, "api-key", "", "ChainVault API key")
	flag.StringVar(&signingKey, "signing-key", "", "Request signing secret")
	flag.StringVar(&passphrase, "passphrase", "", "Default encryption passphrase")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Transfer-status poll interval (e.g., 10s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		App: App{
			APIKey:               apiKey,
			SigningKey:           signingKey,
			EncryptionPassphrase: passphrase,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
