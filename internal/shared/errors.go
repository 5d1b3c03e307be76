package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidStatus indicates a disallowed status transition.
	ErrInvalidStatus = errors.New("invalid status transition")
	// ErrValidation indicates a request failed input validation.
	ErrValidation = errors.New("validation failed")
)
