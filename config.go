package brevo

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds client configuration, typically resolved from the
// environment with [FromEnv]. Embed it in your app config for env
// parsing with caarlos0/env.
type Config struct {
	// APIKey authenticates requests. Required.
	APIKey string `env:"BREVO_API_KEY"`
	// BaseURL is the API base URL.
	BaseURL string `env:"BREVO_API_BASE_URL" envDefault:"https://api.brevo.com/v3"`
	// Timeout is the per-request timeout.
	Timeout time.Duration `env:"BREVO_TIMEOUT" envDefault:"30s"`
	// Sandbox makes Brevo accept and discard messages instead of
	// delivering them.
	Sandbox bool `env:"BREVO_SANDBOX" envDefault:"false"`
	// DefaultFromEmail is the fallback sender address for raw-content
	// sends that carry no explicit sender. Optional.
	DefaultFromEmail string `env:"BREVO_DEFAULT_FROM_EMAIL"`
	// DefaultFromName is the display name for DefaultFromEmail. Optional.
	DefaultFromName string `env:"BREVO_DEFAULT_FROM_NAME"`
}

// FromEnv builds a Config from process environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
