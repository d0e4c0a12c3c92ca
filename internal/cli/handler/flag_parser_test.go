package handler

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a mock cobra.Command with specified flags
func createTestCommand() *cobra.Command {
	return &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
}

// ============================================================================
// ParseID Tests
// ============================================================================

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue int
		wantErr   string
	}{
		{name: "valid id", flagValue: 42},
		{name: "id = 1", flagValue: 1},
		{name: "zero id", flagValue: 0, wantErr: "must be greater than 0"},
		{name: "negative id", flagValue: -1, wantErr: "must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().Int("id", tt.flagValue, "snapshot id")

			got, err := NewFlagParser(cmd).ParseID("id")
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.flagValue, got)
		})
	}
}

// ============================================================================
// ParseString Tests
// ============================================================================

func TestParseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "plain", value: "Alice", want: "Alice"},
		{name: "trimmed", value: "  Alice  ", want: "Alice"},
		{name: "empty", value: "", wantErr: true},
		{name: "whitespace only", value: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String("name", tt.value, "name")

			got, err := NewFlagParser(cmd).ParseString("name")
			if tt.wantErr {
				assert.ErrorContains(t, err, "name is required")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseString_NonExistentFlag(t *testing.T) {
	t.Parallel()

	_, err := NewFlagParser(createTestCommand()).ParseString("missing")
	assert.ErrorContains(t, err, "failed to parse missing flag")
}

// ============================================================================
// Numeric Tests
// ============================================================================

func TestParseNonNegativeInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "positive", value: 20},
		{name: "zero", value: 0},
		{name: "negative", value: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().Int("age", tt.value, "age")

			got, err := NewFlagParser(cmd).ParseNonNegativeInt("age")
			if tt.wantErr {
				assert.ErrorContains(t, err, "age must not be negative")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().Float64("min", 0, "minimum grade")
	require.NoError(t, cmd.Flags().Parse([]string{"--min", "-1.25"}))

	got, err := NewFlagParser(cmd).ParseFloat("min")
	require.NoError(t, err)
	assert.Equal(t, -1.25, got)

	_, err = NewFlagParser(createTestCommand()).ParseFloat("min")
	assert.Error(t, err)
}

// ============================================================================
// ParseChoice Tests
// ============================================================================

func TestParseChoice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "unset", value: "", want: ""},
		{name: "allowed", value: "grade", want: "grade"},
		{name: "rejected", value: "age", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String("sort", tt.value, "sort order")

			got, err := NewFlagParser(cmd).ParseChoice("sort", "grade")
			if tt.wantErr {
				assert.ErrorContains(t, err, "sort must be one of grade")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ============================================================================
// OutputFormats Tests
// ============================================================================

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("quiet", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--quiet"}))

	jsonOutput, quiet, err := NewFlagParser(cmd).OutputFormats()
	require.NoError(t, err)
	assert.False(t, jsonOutput)
	assert.True(t, quiet)
}

func TestOutputFormats_MissingFlags(t *testing.T) {
	t.Parallel()

	_, _, err := NewFlagParser(createTestCommand()).OutputFormats()
	assert.ErrorContains(t, err, "failed to parse json flag")
}
