package api

// Contact identifies a mailbox with an optional display name.
// Address validity is checked by the Brevo API, not locally.
type Contact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Attachment is a file attached to an outgoing message. Content is
// base64-encoded on the wire; alternatively URL points the API at a
// remotely hosted file.
type Attachment struct {
	Name    string `json:"name,omitempty"`
	Content []byte `json:"content,omitempty"`
	URL     string `json:"url,omitempty"`
}

// SendEmailRequest represents the POST /smtp/email request for a
// raw-content send. Optional fields carry omitempty so an unset field
// never appears in the payload.
type SendEmailRequest struct {
	Sender      *Contact          `json:"sender"`
	To          []Contact         `json:"to"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent"`
	TextContent string            `json:"textContent,omitempty"`
	ReplyTo     *Contact          `json:"replyTo,omitempty"`
	CC          []Contact         `json:"cc,omitempty"`
	BCC         []Contact         `json:"bcc,omitempty"`
	Attachment  []Attachment      `json:"attachment,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	ScheduledAt string            `json:"scheduledAt,omitempty"`
}

// SendTemplateEmailRequest represents the POST /smtp/email request for a
// template send. The sender is optional because the template may define
// its own.
type SendTemplateEmailRequest struct {
	To          []Contact         `json:"to"`
	TemplateID  int64             `json:"templateId"`
	Params      map[string]any    `json:"params,omitempty"`
	Sender      *Contact          `json:"sender,omitempty"`
	ReplyTo     *Contact          `json:"replyTo,omitempty"`
	CC          []Contact         `json:"cc,omitempty"`
	BCC         []Contact         `json:"bcc,omitempty"`
	Attachment  []Attachment      `json:"attachment,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	ScheduledAt string            `json:"scheduledAt,omitempty"`
}

// SendEmailResponse represents the POST /smtp/email response.
// MessageIDs is populated instead of MessageID for scheduled sends
// addressed to multiple recipients.
type SendEmailResponse struct {
	MessageID  string   `json:"messageId"`
	MessageIDs []string `json:"messageIds"`
}
