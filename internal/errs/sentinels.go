// Package errs contains sentinel errors used across layers for stable error
// matching with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates malformed input that slipped past the caller.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail indicates a registration attempt with an email that
	// already belongs to another account (compared case-insensitively).
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login. The two wrapped
	// variants below let the presentation layer show distinct messages
	// while callers keep matching the family with errors.Is.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailNotRegistered: no account with the given email exists.
	ErrEmailNotRegistered = fmt.Errorf("%w: email not registered", ErrInvalidCredentials)

	// ErrWrongSecret: the email exists but the secret does not match.
	ErrWrongSecret = fmt.Errorf("%w: wrong password", ErrInvalidCredentials)

	// ErrNotAuthenticated indicates an operation that requires an
	// authenticated session (e.g. profile edits) was called without one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrStorageUnavailable indicates the durable store cannot be read or
	// written. Readers degrade to empty state instead of failing.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
