package api

import (
	"fmt"

	"github.com/waqarulwahab/autoport/internal/common"
)

// RequestError is the failure shape every adapter operation returns when the
// backend rejects a request: the backend-supplied message when present, the
// HTTP status, and optional per-field validation details.
//
// Transport failures and credential rejections wrap the matching sentinel
// from internal/common, so callers can branch with errors.Is.
type RequestError struct {
	// Status is the HTTP status code, 0 when the transport failed before
	// a response arrived.
	Status int

	// Message is the backend-supplied error message, or a generic one.
	Message string

	// Details maps field names to their validation messages.
	Details map[string][]string

	// Err is the sentinel classifying this failure (common.ErrUnavailable,
	// common.ErrUnauthorized), or nil for plain backend rejections.
	Err error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("API request failed (status %d)", e.Status)
	}
	return "API request failed"
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// unavailable wraps a transport-level failure.
func unavailable(err error) *RequestError {
	return &RequestError{
		Message: fmt.Sprintf("server unavailable: %v", err),
		Err:     common.ErrUnavailable,
	}
}
