package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrBinNotFound is returned when an operation names a bin that is not in the collection
	ErrBinNotFound = errors.New("bin not found")

	// ErrItemNotFound is returned when a delete targets a missing position or name
	ErrItemNotFound = errors.New("item not found")

	// ErrCapacityExceeded is returned when an add would push a bin over capacity
	ErrCapacityExceeded = errors.New("bin capacity exceeded")
)

// ValidationError describes rejected user input for a single field
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
