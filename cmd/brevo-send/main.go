package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	brevo "github.com/dmckim1977/brevo-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: brevo-send <send|template> [flags]")
	}

	// Load .env file if it exists (won't error if missing)
	_ = godotenv.Load()

	cfg, err := brevo.FromEnv()
	if err != nil {
		fatal("load config: %v", err)
	}

	client, err := brevo.NewFromConfig(cfg)
	if err != nil {
		fatal("create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "send":
		send(ctx, client, os.Args[2:])
	case "template":
		sendTemplate(ctx, client, os.Args[2:])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func send(ctx context.Context, client *brevo.Client, args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	to := fs.String("to", "", "recipient email address (required)")
	from := fs.String("from", "", "sender email address (defaults to BREVO_DEFAULT_FROM_EMAIL)")
	subject := fs.String("subject", "", "subject line (required)")
	html := fs.String("html", "", "HTML body (required)")
	text := fs.String("text", "", "plain-text body")
	fs.Parse(args)

	if *to == "" || *subject == "" || *html == "" {
		fatal("send requires -to, -subject and -html")
	}

	params := brevo.SendEmailParams{
		To:          []brevo.Contact{{Email: *to}},
		Subject:     *subject,
		HTMLContent: *html,
		TextContent: *text,
	}
	if *from != "" {
		params.Sender = &brevo.Contact{Email: *from}
	}

	result, err := client.SendEmail(ctx, params)
	if err != nil {
		fatal("send email: %v", err)
	}

	printResult(result)
}

func sendTemplate(ctx context.Context, client *brevo.Client, args []string) {
	fs := flag.NewFlagSet("template", flag.ExitOnError)
	to := fs.String("to", "", "recipient email address (required)")
	templateID := fs.Int64("id", 0, "template ID (required)")
	paramsJSON := fs.String("params", "", "template variables as a JSON object")
	fs.Parse(args)

	if *to == "" || *templateID == 0 {
		fatal("template requires -to and -id")
	}

	var templateParams map[string]any
	if *paramsJSON != "" {
		if err := json.Unmarshal([]byte(*paramsJSON), &templateParams); err != nil {
			fatal("parse -params: %v", err)
		}
	}

	result, err := client.SendTemplateEmail(ctx, brevo.SendTemplateEmailParams{
		To:         []brevo.Contact{{Email: *to}},
		TemplateID: *templateID,
		Params:     templateParams,
	})
	if err != nil {
		fatal("send template email: %v", err)
	}

	printResult(result)
}

func printResult(result *brevo.SendResult) {
	out := map[string]any{"messageId": result.MessageID}
	if len(result.MessageIDs) > 0 {
		out["messageIds"] = result.MessageIDs
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode result: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
