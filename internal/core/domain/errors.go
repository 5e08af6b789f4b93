package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Document operations never fail; these errors belong to the edges of the
// core (access, seeding, export and settings).
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Access Errors.

	// ErrInvalidCredentials indicates an unknown username or wrong password.
	// The message is shown to the user as is.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrRateLimited indicates too many failed logins in a short window.
	ErrRateLimited = errors.New("too many failed attempts, try again later")

	// Seed and Export Errors.

	// ErrUnsupportedFormat indicates an unknown export or import format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrSchemaViolation indicates a seed document does not have the resume shape.
	ErrSchemaViolation = errors.New("document does not match resume schema")
)
