// Package brevo provides a Go client for the Brevo (formerly Sendinblue)
// transactional email API.
//
// The client supports two ways of sending: raw-content sends, where the
// caller supplies the HTML (and optionally plain-text) body, and template
// sends, where a template authored in the Brevo dashboard is populated
// with caller-supplied variables.
//
// Basic usage:
//
//	client, err := brevo.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.SendEmail(ctx, brevo.SendEmailParams{
//	    To:          []brevo.Contact{{Email: "user@example.com", Name: "User"}},
//	    Sender:      &brevo.Contact{Email: "noreply@example.com"},
//	    Subject:     "Welcome!",
//	    HTMLContent: "<html><body>Hello!</body></html>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Message ID:", result.MessageID)
//
// Sending with a template:
//
//	result, err := client.SendTemplateEmail(ctx, brevo.SendTemplateEmailParams{
//	    To:         []brevo.Contact{{Email: "user@example.com"}},
//	    TemplateID: 42,
//	    Params:     map[string]any{"firstName": "David"},
//	})
//
// Sandbox mode makes the API accept and discard messages instead of
// delivering them, which is useful in test environments:
//
//	client, err := brevo.New(apiKey, brevo.WithSandbox(true))
//
// Configuration can also come from the environment via [FromEnv] and
// [NewFromConfig].
package brevo
