package models

import "errors"

// Roster errors. Callers wrap these with context and match them with errors.Is.
var (
	// ErrFileAccess indicates the roster file could not be opened, read or written
	ErrFileAccess = errors.New("roster file access failed")

	// ErrFormat indicates a three-field line whose age or grade is not numeric
	ErrFormat = errors.New("malformed roster record")

	// ErrSnapshotNotFound indicates an archive snapshot id that does not exist
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
