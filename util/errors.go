package util

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers and tests match with errors.Is; the response
// envelope carries the kind so a caller can tell which half of a two-step
// operation failed.
var (
	ErrValidation  = errors.New("validation error")
	ErrEncoding    = errors.New("encoding error")
	ErrPersistence = errors.New("persistence error")
	ErrCredential  = errors.New("credential error")
)

func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func NewEncodingError(msg string) error {
	return fmt.Errorf("%w: %s", ErrEncoding, msg)
}

func NewPersistenceError(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

func NewCredentialError(err error) error {
	return fmt.Errorf("%w: %v", ErrCredential, err)
}

func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrEncoding):
		return "encoding"
	case errors.Is(err, ErrPersistence):
		return "persistence"
	case errors.Is(err, ErrCredential):
		return "credential"
	default:
		return "internal"
	}
}
