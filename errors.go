package tmdb

import (
	"errors"
	"fmt"
	"strings"
)

// Construction errors
var (
	// ErrMissingAPIKey indicates the client was built without an API key.
	ErrMissingAPIKey = errors.New("tmdb API key is required")
	// ErrInvalidRequestRate indicates a negative request rate.
	ErrInvalidRequestRate = errors.New("request rate must not be negative")
)

// Status codes TMDB embeds in error bodies. These are the provider's own
// codes, not HTTP statuses.
const (
	StatusInvalidAPIKey    = 7
	StatusResourceNotFound = 34
)

// TransportError wraps a failure that never produced a classified API
// response: the request itself failed, or a body could not be decoded.
type TransportError struct {
	// Op is "request" when the HTTP round trip failed and "decode" when
	// the response body did not match the expected shape.
	Op  string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("tmdb: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError represents a 422 response carrying one or more
// human-readable validation messages.
type ValidationError struct {
	Messages []string `json:"errors"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("tmdb: validation failed: %s", strings.Join(e.Messages, "; "))
}

// ServerErrorBody is the JSON body TMDB returns alongside non-2xx,
// non-422 statuses.
type ServerErrorBody struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// ServerError represents any non-2xx response other than 422. StatusCode
// is the HTTP status; Body.StatusCode is TMDB's own error code.
type ServerError struct {
	StatusCode int
	Body       ServerErrorBody
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("tmdb: server error: status %d: code %d: %s",
		e.StatusCode, e.Body.StatusCode, e.Body.StatusMessage)
}

// AsServerError extracts a ServerError from an error chain.
func AsServerError(err error) (*ServerError, bool) {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr, true
	}
	return nil, false
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// IsInvalidAPIKey checks if the error indicates a rejected API key.
func IsInvalidAPIKey(err error) bool {
	if serverErr, ok := AsServerError(err); ok {
		return serverErr.Body.StatusCode == StatusInvalidAPIKey
	}
	return false
}

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	if serverErr, ok := AsServerError(err); ok {
		return serverErr.Body.StatusCode == StatusResourceNotFound
	}
	return false
}
