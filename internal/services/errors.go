package services

import "errors"

// Service error taxonomy. Handlers map these to HTTP status codes with
// errors.Is; services wrap them with fmt.Errorf("...: %w", ...) to add
// context. Store failures pass through unwrapped.
var (
	// ErrNotFound: an id or natural-key lookup missed
	ErrNotFound = errors.New("not found")

	// ErrConflict: a create collided on a natural key
	ErrConflict = errors.New("already exists")

	// ErrValidation: caller input names a nonexistent referenced entity or
	// an unknown enum value
	ErrValidation = errors.New("validation failed")
)
