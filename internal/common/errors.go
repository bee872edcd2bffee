// Package common defines shared sentinel errors used across the ledgerboard
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Storage errors. ErrorConnection means the store could not be reached at
	// all; ErrorDatabase is the generic, non-leaking prefix services return
	// for any failed database operation.
	ErrorConnection = errors.New("cannot connect to database")
	ErrorDatabase   = errors.New("Database Error")

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")

	// ErrorValidation is the root of every validation failure; the concrete
	// value carrying field detail is *ValidationError.
	ErrorValidation = errors.New("validation error")
)
