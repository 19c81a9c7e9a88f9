// Package common defines shared constants and sentinel errors used across
// the traintrack server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors. ErrorNotFound covers both "no such row" and
	// "row owned by another user" — repositories return it through a single
	// code path so the two cases stay indistinguishable.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
