package brevo

import (
	"net/http"
	"time"

	"github.com/dmckim1977/brevo-go/internal/api"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	apiKey        string
	baseURL       string
	httpClient    *http.Client
	timeout       time.Duration
	sandbox       bool
	defaultSender *Contact
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIKey overrides the API key. Mostly useful with [NewFromConfig]
// when the key comes from somewhere other than the environment.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithBaseURL sets the API base URL. The default is api.brevo.com/v3.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The custom client's timeout
// takes precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithSandbox toggles sandbox mode. When enabled, every outgoing payload
// carries the X-Sib-Sandbox header so Brevo accepts and discards the
// message instead of delivering it.
func WithSandbox(enabled bool) Option {
	return func(c *clientConfig) {
		c.sandbox = enabled
	}
}

// WithDefaultSender sets the sender used by SendEmail when the params
// carry none. Template sends never fall back to it.
func WithDefaultSender(sender Contact) Option {
	return func(c *clientConfig) {
		c.defaultSender = &sender
	}
}

func defaultClientConfig() clientConfig {
	return clientConfig{
		baseURL: api.DefaultBaseURL,
		timeout: api.DefaultTimeout,
	}
}
