package entity

import (
	"errors"
	"fmt"
)

// Package errors define the two ways construction can fail.
// Callers tell them apart with errors.Is.
var (
	// ErrNotNumeric is returned when an input cannot be read as a real number.
	ErrNotNumeric = errors.New("all inputs must be numeric")

	// ErrNotPositive is returned when an input is numeric but not greater than zero.
	ErrNotPositive = errors.New("all dimensions and mass must be positive")
)

// InputError reports the first input that failed construction.
type InputError struct {
	// Field is the input name: height, width, length or mass.
	Field string

	// Value is the input as received.
	Value string

	// Err is ErrNotNumeric or ErrNotPositive.
	Err error
}

// Error implements error.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s=%q", e.Err, e.Field, e.Value)
}

// Unwrap returns the underlying sentinel error.
func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInputError checks if the error was caused by invalid package input.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error is a type or value error from construction
func IsInputError(err error) bool {
	return errors.Is(err, ErrNotNumeric) || errors.Is(err, ErrNotPositive)
}
