package store

import "errors"

var (
	// ErrInvalidCredentials is returned by Authenticate and surfaced to the
	// login form.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAuthorizationDenied marks a mutation attempted by an identity that
	// may not perform it. The presentation layer swallows it for resident
	// operations; it exists so callers and tests can assert on the denial.
	ErrAuthorizationDenied = errors.New("authorization denied")

	// ErrProtectedRecord blocks deletion of the house-manager singleton.
	// Unlike ErrAuthorizationDenied this guards a structural invariant and
	// is always shown to the user.
	ErrProtectedRecord = errors.New("protected record")
)
