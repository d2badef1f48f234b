package brevo

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

// sendTestEmail issues a minimal valid send against the captured client.
func sendTestEmail(t *testing.T, client *Client) error {
	t.Helper()
	_, err := client.SendEmail(context.Background(), SendEmailParams{
		To:          []Contact{{Email: "test@example.com"}},
		Subject:     "Test",
		HTMLContent: "<p>Test</p>",
		Sender:      &Contact{Email: "sender@example.com"},
	})
	return err
}

func TestSendEmail_AuthError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusUnauthorized, `{"message":"Invalid API key"}`)

	err := sendTestEmail(t, client)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid API key" {
		t.Errorf("Message = %q, want message from response body", apiErr.Message)
	}
	if apiErr.Body["message"] != "Invalid API key" {
		t.Errorf("Body = %v, want parsed response body", apiErr.Body)
	}
}

func TestSendEmail_RateLimitError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusTooManyRequests, `{"message":"Rate limit exceeded"}`)

	err := sendTestEmail(t, client)
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
}

func TestSendEmail_GenericAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusInternalServerError, `{"message":"Internal server error"}`)

	err := sendTestEmail(t, client)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrRateLimited) {
		t.Errorf("500 error matched an auth/rate-limit sentinel: %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if apiErr.Message != "Internal server error" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestSendEmail_MalformedErrorBody(t *testing.T) {
	client, _ := newTestClient(t, http.StatusBadRequest, `<html>Bad Gateway?</html>`)

	err := sendTestEmail(t, client)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	// The raw text becomes the message; the body map stays empty.
	if apiErr.Message != `<html>Bad Gateway?</html>` {
		t.Errorf("Message = %q, want raw response text", apiErr.Message)
	}
	if len(apiErr.Body) != 0 {
		t.Errorf("Body = %v, want empty map", apiErr.Body)
	}
	if apiErr.Body == nil {
		t.Error("Body is nil, want empty map")
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with message",
			err:  &APIError{StatusCode: 401, Message: "Invalid API key"},
			want: "API error 401: Invalid API key",
		},
		{
			name: "without message",
			err:  &APIError{StatusCode: 503},
			want: "API error 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		target     error
		want       bool
	}{
		{"401 matches ErrUnauthorized", 401, ErrUnauthorized, true},
		{"401 does not match ErrRateLimited", 401, ErrRateLimited, false},
		{"429 matches ErrRateLimited", 429, ErrRateLimited, true},
		{"429 does not match ErrUnauthorized", 429, ErrUnauthorized, false},
		{"500 matches neither", 500, ErrUnauthorized, false},
		{"400 matches neither", 400, ErrRateLimited, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: tt.statusCode, Message: "x"}
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError_PassesThroughNil(t *testing.T) {
	if err := wrapError(nil); err != nil {
		t.Errorf("wrapError(nil) = %v, want nil", err)
	}
}

func TestWrapError_PassesThroughUnknownErrors(t *testing.T) {
	sentinel := errors.New("some transport failure")
	if err := wrapError(sentinel); err != sentinel {
		t.Errorf("wrapError() = %v, want the original error", err)
	}
}
