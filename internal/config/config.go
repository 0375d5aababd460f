// Package config loads client-layer settings from the environment. A
// .env file in the working directory is honored when present.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the client layer. UseBackend selects
// the live HTTP data source; when false the seeded in-memory fixture
// store serves all reads and writes.
type Config struct {
	BaseURL           string        `env:"API_BASE_URL,default=http://localhost:8080"`
	CDNURL            string        `env:"CDN_BASE_URL,default=https://cdn.roomlink.dev"`
	OAuthClientID     string        `env:"OAUTH_CLIENT_ID"`
	PaymentGatewayKey string        `env:"PAYMENT_GATEWAY_KEY"`
	UseBackend        bool          `env:"USE_BACKEND,default=false"`
	Currency          string        `env:"CURRENCY,default=USD"`
	Locale            string        `env:"LOCALE,default=en-US"`
	MaxUploadBytes    int64         `env:"MAX_UPLOAD_BYTES,default=5242880"`
	AllowedUploadMIME []string      `env:"ALLOWED_UPLOAD_MIME,default=application/pdf;image/jpeg;image/png"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	RequestsPerSecond float64       `env:"REQUESTS_PER_SECOND,default=0"`
	ListenAddr        string        `env:"LISTEN_ADDR,default=:8080"`
	SeedFile          string        `env:"SEED_FILE"`
	LogLevel          string        `env:"LOG_LEVEL,default=info"`
}

// Load reads configuration from the environment, first merging in a
// .env file if one exists next to the process.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if cfg.MaxUploadBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}
	return cfg, nil
}
