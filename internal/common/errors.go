// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Request validation: a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// The operation needs prior state, e.g. a registered user.
	ErrPreconditionFailed = errors.New("precondition failed")

	// The zero-knowledge check failed. Never says which equation.
	ErrPermissionDenied = errors.New("permission denied")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
