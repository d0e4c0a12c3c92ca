package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/models"
)

func newFileCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	AddFileFlag(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestGetDataFile(t *testing.T) {
	t.Run("flag wins over config", func(t *testing.T) {
		cmd := newFileCommand(t, "--file", "flag.txt")
		cfg := &config.Config{DataFile: "config.txt"}
		assert.Equal(t, "flag.txt", GetDataFile(cmd, cfg))
	})

	t.Run("config when flag unset", func(t *testing.T) {
		cmd := newFileCommand(t)
		cfg := &config.Config{DataFile: "config.txt"}
		assert.Equal(t, "config.txt", GetDataFile(cmd, cfg))
	})

	t.Run("default without config", func(t *testing.T) {
		cmd := newFileCommand(t)
		assert.Equal(t, config.DefaultDataFile, GetDataFile(cmd, nil))
	})

	t.Run("command without file flag", func(t *testing.T) {
		cmd := &cobra.Command{Use: "bare"}
		cfg := &config.Config{DataFile: "config.txt"}
		assert.Equal(t, "config.txt", GetDataFile(cmd, cfg))
	})
}

func TestAddOutputFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddOutputFlags(cmd)

	require.NoError(t, cmd.Flags().Parse([]string{"--json"}))
	jsonOutput, err := cmd.Flags().GetBool("json")
	require.NoError(t, err)
	assert.True(t, jsonOutput)

	quiet, err := cmd.Flags().GetBool("quiet")
	require.NoError(t, err)
	assert.False(t, quiet)
}

func TestPrintStudents(t *testing.T) {
	var buf bytes.Buffer
	PrintStudents(&buf, []models.Student{
		models.NewStudent("Alice", 20, 3.8),
		models.NewStudent("Bob", 22, 3.5),
	})

	assert.Equal(t,
		"Student{name='Alice', age=20, grade=3.8}\nStudent{name='Bob', age=22, grade=3.5}\n",
		buf.String())
}
