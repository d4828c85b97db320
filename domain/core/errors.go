package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// State errors
	ErrNoDataset = errors.New("no dataset loaded")

	// Input errors
	ErrMalformedInput = errors.New("malformed input data")

	// Tabular invariant violations
	ErrColumnLengthMismatch = errors.New("column length mismatch")
	ErrEmptyDataset         = errors.New("dataset has no columns")
	ErrUnknownColumn        = errors.New("unknown column")
)

// Error constructors with context
func NewMalformedInputError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, cause)
}

func NewColumnLengthError(column string, got, want int) error {
	return fmt.Errorf("%w: column %s has %d rows, expected %d", ErrColumnLengthMismatch, column, got, want)
}

// Error checking helpers
func IsStateError(err error) bool {
	return errors.Is(err, ErrNoDataset)
}

func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrColumnLengthMismatch) ||
		errors.Is(err, ErrEmptyDataset)
}
