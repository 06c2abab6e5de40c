package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when the supplied credential does not match
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict is returned when the current state forbids the operation
	ErrConflict = errors.New("conflict")
	// ErrUnavailable is returned when a resource is temporarily exhausted
	ErrUnavailable = errors.New("unavailable")
)
