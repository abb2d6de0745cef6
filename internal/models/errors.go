package models

import "errors"

// Common errors for model operations
var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned when input data fails validation
	ErrInvalidInput = errors.New("invalid input")
)
