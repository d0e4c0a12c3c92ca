package cli

import (
	"errors"
	"io/fs"

	"github.com/thenoetrevino/roster/internal/models"
)

// Exit codes for CLI subcommands.
// The interactive session always exits with ExitSuccess and reports errors
// as messages instead.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: file permission errors, archive errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: a missing roster file or an unknown snapshot ID.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a roster record with a non-numeric age or grade.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: negative ages, empty snapshot labels.
	ExitValidation = 5
)

// ValidationError marks an error as failed input validation
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// ReportedError marks an error the command already showed to the user, so
// the caller only needs its exit code
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}

// ExitCodeFor maps a command error to the process exit code
func ExitCodeFor(err error) int {
	var validationErr *ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, models.ErrFormat):
		return ExitDataErr
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, models.ErrSnapshotNotFound):
		return ExitNotFound
	case errors.As(err, &validationErr):
		return ExitValidation
	default:
		return ExitError
	}
}
