package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.brevo.com/v3"
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the API client.
type Config struct {
	// BaseURL is the Brevo API base URL.
	BaseURL string
	// APIKey is sent via the api-key header on every request.
	APIKey string
	// HTTPClient overrides the default HTTP client. When set, Timeout
	// is ignored and the custom client's timeout applies.
	HTTPClient *http.Client
	// Timeout is the per-request timeout for the default HTTP client.
	Timeout time.Duration
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// post issues a JSON POST request and decodes the response into result.
// Connection-level failures are returned wrapped, never converted into
// an *APIError.
func (c *Client) post(ctx context.Context, path string, body, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp.StatusCode, raw)
	}

	if result != nil {
		// The message was accepted; a success body that is not valid
		// JSON leaves result zeroed rather than failing the send.
		_ = json.Unmarshal(raw, result)
	}

	return nil
}

// parseErrorResponse classifies a non-2xx response into an *APIError.
// The error message comes from the body's "message" field, falling back
// to the raw response text.
func parseErrorResponse(statusCode int, raw []byte) error {
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	message := string(raw)
	if m, ok := body["message"].(string); ok {
		message = m
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Body:       body,
	}
}
