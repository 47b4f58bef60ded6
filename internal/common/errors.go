// Package common defines shared constants and sentinel errors used across
// the AutoPort client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (missing, rejected or stale credentials).
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors raised before any network call.
	ErrValidation = errors.New("validation failed")

	// Local cache errors (fallback mode without seeded data).
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
