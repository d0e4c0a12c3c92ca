package archive

import "errors"

// Domain errors for archive service
var (
	// Validation errors
	ErrEmptyLabel        = errors.New("snapshot label cannot be empty")
	ErrLabelTooLong      = errors.New("snapshot label cannot exceed 100 characters")
	ErrInvalidSnapshotID = errors.New("invalid snapshot ID")
	ErrEmptyPath         = errors.New("roster file path cannot be empty")
)
