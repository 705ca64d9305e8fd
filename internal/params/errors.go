package params

import (
	"errors"
	"fmt"
)

// Parameter lookup errors.
var (
	// ErrMissingKey indicates a required parameter is absent from the file.
	ErrMissingKey = errors.New("params: required parameter missing")

	// ErrInvalidValue indicates a parameter cannot be read as the requested type.
	ErrInvalidValue = errors.New("params: invalid parameter value")

	// ErrSyntax indicates the file or an override is not laid out as Section:name.
	ErrSyntax = errors.New("params: malformed parameter file")
)

// KeyError wraps a lookup error with the key that caused it.
type KeyError struct {
	Key     string
	Wrapped error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Wrapped)
}

func (e *KeyError) Unwrap() error {
	return e.Wrapped
}
