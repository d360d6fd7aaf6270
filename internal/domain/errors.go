// Package domain defines the core value types and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyGameTitle is returned when a request has no game title.
	ErrEmptyGameTitle = errors.New("game title cannot be empty")

	// ErrInvalidContentType is returned when a content type is not one of the known values.
	ErrInvalidContentType = errors.New("invalid content type")
)
