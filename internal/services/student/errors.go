package student

import "errors"

// Domain errors for student service
var (
	ErrEmptyPath   = errors.New("roster file path cannot be empty")
	ErrNegativeAge = errors.New("age cannot be negative")
)
