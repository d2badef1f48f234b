package brevo

import (
	"context"
	"time"

	"github.com/dmckim1977/brevo-go/internal/api"
)

// sandboxHeader is the payload header that makes Brevo accept and
// discard a message instead of delivering it.
const sandboxHeader = "X-Sib-Sandbox"

// Client is a Brevo transactional email API client.
//
// Configuration is captured at construction time and never re-read, so a
// Client's behavior is fully determined by its captured state. A Client
// holds no mutable state and is safe for concurrent use.
type Client struct {
	api           *api.Client
	sandbox       bool
	defaultSender *Contact
}

// New creates a new client authenticated with apiKey.
// It fails with [ErrMissingAPIKey] before any network activity when the
// key is empty, so callers cannot accidentally send unauthenticated
// requests.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()
	cfg.apiKey = apiKey
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     cfg.apiKey,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		api:           apiClient,
		sandbox:       cfg.sandbox,
		defaultSender: cfg.defaultSender,
	}, nil
}

// NewFromConfig creates a new client from a Config, typically loaded
// with [FromEnv]. Options are applied on top of the Config values, so
// WithAPIKey and friends act as overrides.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := make([]Option, 0, 4+len(opts))
	if cfg.BaseURL != "" {
		base = append(base, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		base = append(base, WithTimeout(cfg.Timeout))
	}
	base = append(base, WithSandbox(cfg.Sandbox))
	if cfg.DefaultFromEmail != "" {
		base = append(base, WithDefaultSender(Contact{
			Email: cfg.DefaultFromEmail,
			Name:  cfg.DefaultFromName,
		}))
	}

	return New(cfg.APIKey, append(base, opts...)...)
}

// SendEmail sends an email with caller-supplied HTML content.
//
// When params.Sender is nil the configured default sender is used; if
// neither is available the call fails with [ErrMissingSender] before any
// network activity.
func (c *Client) SendEmail(ctx context.Context, params SendEmailParams) (*SendResult, error) {
	if len(params.To) == 0 {
		return nil, ErrNoRecipients
	}

	sender := params.Sender
	if sender == nil {
		if c.defaultSender == nil {
			return nil, ErrMissingSender
		}
		sender = c.defaultSender
	}

	req := &api.SendEmailRequest{
		Sender:      sender,
		To:          params.To,
		Subject:     params.Subject,
		HTMLContent: params.HTMLContent,
		TextContent: params.TextContent,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Attachment:  params.Attachments,
		Headers:     c.applySandbox(params.Headers),
		Tags:        params.Tags,
		ScheduledAt: formatScheduledAt(params.ScheduledAt),
	}

	resp, err := c.api.SendEmail(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}

	return &SendResult{
		MessageID:  resp.MessageID,
		MessageIDs: resp.MessageIDs,
	}, nil
}

// SendTemplateEmail sends an email rendered from a template authored in
// the Brevo dashboard, identified by params.TemplateID. There is no
// default-sender fallback: the template may define its own sender.
func (c *Client) SendTemplateEmail(ctx context.Context, params SendTemplateEmailParams) (*SendResult, error) {
	if len(params.To) == 0 {
		return nil, ErrNoRecipients
	}

	req := &api.SendTemplateEmailRequest{
		To:          params.To,
		TemplateID:  params.TemplateID,
		Params:      params.Params,
		Sender:      params.Sender,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Attachment:  params.Attachments,
		Headers:     c.applySandbox(params.Headers),
		Tags:        params.Tags,
		ScheduledAt: formatScheduledAt(params.ScheduledAt),
	}

	resp, err := c.api.SendTemplateEmail(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}

	return &SendResult{
		MessageID:  resp.MessageID,
		MessageIDs: resp.MessageIDs,
	}, nil
}

// applySandbox returns the payload headers with the sandbox marker set
// when sandbox mode is enabled. The caller's map is copied, not mutated.
// Applied to every payload immediately before dispatch, regardless of
// which operation built it.
func (c *Client) applySandbox(headers map[string]string) map[string]string {
	if !c.sandbox {
		return headers
	}

	merged := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		merged[k] = v
	}
	merged[sandboxHeader] = "drop"
	return merged
}

// formatScheduledAt renders a scheduled send time the way the API
// expects: ISO 8601 with millisecond precision. A zero time means the
// message is not scheduled and the field is omitted.
func formatScheduledAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02T15:04:05.000Z07:00")
}
