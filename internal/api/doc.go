// Package api provides HTTP client functionality for communicating with the
// Brevo v3 REST API. It handles authentication, request/response
// serialization, and classification of non-2xx responses into typed errors.
//
// The API key is sent via the api-key header on every request. Requests and
// responses are JSON; a response body that is not valid JSON never produces
// a secondary error, it degrades to an empty body map so the HTTP status
// remains the error the caller sees.
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
