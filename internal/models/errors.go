package models

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when a product id does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrAddOnNotFound is returned when an add-on id does not exist.
	ErrAddOnNotFound = errors.New("add-on not found")
	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned when a status update is not allowed
	// by the order transition table.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError marks input that was rejected before any storage I/O.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
