package brevo

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmckim1977/brevo-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingSender is returned by SendEmail when no sender is given
	// and no default sender is configured.
	ErrMissingSender = errors.New("no sender provided and no default sender configured")

	// ErrNoRecipients is returned when a send has an empty recipient list.
	ErrNoRecipients = errors.New("email must have at least one recipient")

	// ErrUnauthorized is returned when the API key is rejected by Brevo.
	ErrUnauthorized = errors.New("invalid or rejected API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents a non-2xx HTTP response from the Brevo API.
// Configuration problems are reported through sentinel errors before any
// network activity; an APIError always comes from an actual response.
type APIError struct {
	StatusCode int
	Message    string
	// Body is the parsed JSON response body, kept for caller-side
	// diagnostics. It is empty when the body was not valid JSON.
	Body map[string]any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
// Transport-level failures pass through unchanged.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Body:       apiErr.Body,
		}
	}

	return err
}
