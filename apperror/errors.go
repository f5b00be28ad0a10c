// Package apperror holds the domain error taxonomy shared by the service and
// repository layers. The API layer maps each sentinel to a fixed HTTP status.
package apperror

import "errors"

var (
	// Missing or empty required field
	ErrValidation = errors.New("validation error")
	// Duplicate unique key (email already registered)
	ErrConflict = errors.New("conflict")
	// No matching owned resource; deliberately covers both "does not exist"
	// and "owned by someone else"
	ErrNotFound = errors.New("not found")
	// Bad credentials or a rejected token
	ErrAuthentication = errors.New("authentication failed")
)
