package brevo

import (
	"time"

	"github.com/dmckim1977/brevo-go/internal/api"
)

// Contact identifies a mailbox with an optional display name. The email
// address is validated by the Brevo API, not locally.
type Contact = api.Contact

// Attachment is a file attached to an outgoing message. Set Content for
// inline data (base64-encoded on the wire) or URL for a remotely hosted
// file.
type Attachment = api.Attachment

// SendEmailParams holds the inputs for a raw-content send.
// To, Subject, and HTMLContent are required. When Sender is nil, the
// client's configured default sender is used. Optional fields left at
// their zero value are omitted from the request payload entirely; an
// empty slice is treated the same as an unset one.
type SendEmailParams struct {
	To          []Contact
	Subject     string
	HTMLContent string

	Sender      *Contact
	TextContent string
	ReplyTo     *Contact
	CC          []Contact
	BCC         []Contact
	Attachments []Attachment
	Headers     map[string]string
	Tags        []string
	ScheduledAt time.Time
}

// SendTemplateEmailParams holds the inputs for a template send.
// To and TemplateID are required. Sender is entirely optional here, with
// no default-sender fallback, because the template may define its own.
type SendTemplateEmailParams struct {
	To         []Contact
	TemplateID int64

	Params      map[string]any
	Sender      *Contact
	ReplyTo     *Contact
	CC          []Contact
	BCC         []Contact
	Attachments []Attachment
	Headers     map[string]string
	Tags        []string
	ScheduledAt time.Time
}

// SendResult is the API acknowledgement for an accepted message.
// The client passes the identifiers through without validating them.
type SendResult struct {
	MessageID  string
	MessageIDs []string
}
