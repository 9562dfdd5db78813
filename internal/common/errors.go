// Package common defines shared constants and sentinel errors used across
// the care-admin console. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Session token errors (invalid or malformed cookie token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Action requires a logged-in workspace.
	ErrUnauthenticated = errors.New("not logged in")

	// Registration boundary check.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Profile editor errors.
	ErrNotEditing   = errors.New("profile is not in edit mode")
	ErrUnknownField = errors.New("unknown profile field")
	ErrInvalidValue = errors.New("invalid field value")

	// File staging errors.
	ErrUnknownCategory = errors.New("unknown file category")
	ErrBusy            = errors.New("upload already in progress")
)
