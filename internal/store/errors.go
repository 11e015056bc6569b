package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrImageNotFound indicates that the requested history entry does not
	// exist in the store.
	ErrImageNotFound = fmt.Errorf("%w: image", ErrNotFound)

	// ErrFailedJobNotFound indicates that the requested failed-job record
	// does not exist in the store.
	ErrFailedJobNotFound = fmt.Errorf("%w: failed job", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
