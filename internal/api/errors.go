package api

import "fmt"

// APIError represents a non-2xx HTTP response from the Brevo API.
type APIError struct {
	StatusCode int
	Message    string
	// Body is the parsed JSON response body. It is empty, never nil,
	// when the response body was not valid JSON.
	Body map[string]any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}
