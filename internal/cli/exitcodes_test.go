package cli

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/roster/internal/models"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	_, statErr := os.Open("/definitely/not/here/students.txt")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"format error", fmt.Errorf("students.txt line 2: %w", models.ErrFormat), ExitDataErr},
		{"missing roster file", fmt.Errorf("%w: %w", models.ErrFileAccess, statErr), ExitNotFound},
		{"unknown snapshot", fmt.Errorf("snapshot 9: %w", models.ErrSnapshotNotFound), ExitNotFound},
		{"validation", &ValidationError{Err: errors.New("age must not be negative")}, ExitValidation},
		{"reported validation", &ReportedError{Err: &ValidationError{Err: errors.New("id must be greater than 0")}}, ExitValidation},
		{"anything else", errors.New("disk on fire"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := &ValidationError{Err: inner}

	assert.Equal(t, "inner", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestIsReported(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")

	assert.False(t, IsReported(inner))
	assert.False(t, IsReported(nil))
	assert.True(t, IsReported(&ReportedError{Err: inner}))
	assert.True(t, IsReported(fmt.Errorf("wrapped: %w", &ReportedError{Err: inner})))
}
