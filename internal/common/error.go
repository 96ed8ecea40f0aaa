// Package common defines shared sentinel errors and small helpers used
// across TaskKeeper layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Registry/ledger-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorNotLoggedIn  = errors.New("not logged in")

	// Validation / generic flow control.
	ErrorValidation = errors.New("validation error")
	ErrorInternal   = errors.New("internal error")
)
