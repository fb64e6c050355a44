package app

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is a structured application error produced from a failed call to
// a remote service. HTTP middleware inspects it to decide the response shape:
// public errors are rendered with their message, field errors and status;
// non-public errors are rendered as a generic 500.
type HTTPError struct {
	// Message is the human-readable description of the failure.
	Message string

	// IsPublic reports whether Message and Errors may be shown to callers.
	IsPublic bool

	// Errors maps request field names to field-level error messages.
	Errors map[string]string

	// Status is the HTTP status code associated with the failure.
	Status int
}

// NewHTTPError builds an HTTPError carrying all four fields. A nil errors map
// is replaced by an empty one; a zero status becomes 500.
func NewHTTPError(message string, isPublic bool, errs map[string]string, status int) *HTTPError {
	if errs == nil {
		errs = map[string]string{}
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}

	return &HTTPError{
		Message:  message,
		IsPublic: isPublic,
		Errors:   errs,
		Status:   status,
	}
}

// Error implements error.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// AsHTTPError returns the first *HTTPError in err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
