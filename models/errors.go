package models

import (
	"errors"
	"fmt"
)

// Failure classes shared by all model operations. Handlers map these to
// HTTP statuses; everything else is reported as an internal error.
var (
	ErrValidation    = errors.New("validation failed")
	ErrAuth          = errors.New("authentication required")
	ErrAuthorization = errors.New("not allowed")
	ErrNotFound      = errors.New("not found")
	ErrStorage       = errors.New("storage operation failed")
	ErrRepository    = errors.New("database operation failed")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func repositoryError(err error) error {
	return fmt.Errorf("%w: %v", ErrRepository, err)
}

func storageError(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
