package users

import "errors"

// ErrNameRequired is reported when a user is created without a name.
var ErrNameRequired = errors.New("name is required")

// ValidationError rejects a single create request.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }
