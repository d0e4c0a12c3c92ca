// Package archive holds the commands that snapshot roster files into the
// SQLite archive and restore them
package archive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	archiveservice "github.com/thenoetrevino/roster/internal/services/archive"
)

// ArchiveCmd returns the archive parent command
func ArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Snapshot and restore roster files",
	}

	cmd.AddCommand(SaveCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(RestoreCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// session bundles what every archive command needs
type session struct {
	cli       *cli.CLI
	service   archiveservice.Service
	formatter *cli.OutputFormatter
}

// outputFormatter builds the formatter for the command's --json and --quiet flags
func outputFormatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, quietMode, err := handler.NewFlagParser(cmd).OutputFormats()
	if err != nil {
		slog.Debug("output flags unavailable", "command", cmd.Name(), "error", err)
	}
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// parseID reads --id and reports a non-positive value as a validation error
func parseID(cmd *cobra.Command) (int, error) {
	id, err := handler.NewFlagParser(cmd).ParseID("id")
	if err != nil {
		return 0, outputFormatter(cmd).Fail("INVALID_FLAGS", &cli.ValidationError{Err: err})
	}
	return id, nil
}

// newSession initializes the CLI and the archive database without
// reporting failures. The caller must call close on success.
func newSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}

	service, err := cliInstance.App.ArchiveService(ctx)
	if err != nil {
		_ = cliInstance.Close()
		return nil, fmt.Errorf("archive unavailable: %w", err)
	}

	return &session{cli: cliInstance, service: service, formatter: outputFormatter(cmd)}, nil
}

// openSession is newSession for commands that report their own errors
func openSession(cmd *cobra.Command) (*session, error) {
	s, err := newSession(cmd)
	if err != nil {
		return nil, outputFormatter(cmd).Fail("INITIALIZATION_ERROR", err)
	}
	return s, nil
}

func (s *session) close() {
	if err := s.cli.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// fail reports err through the formatter, marking service validation
// failures so they map to the validation exit code
func (s *session) fail(code string, err error) error {
	if isValidation(err) {
		err = &cli.ValidationError{Err: err}
	}
	return s.formatter.Fail(code, err)
}

func isValidation(err error) bool {
	return errors.Is(err, archiveservice.ErrEmptyLabel) ||
		errors.Is(err, archiveservice.ErrLabelTooLong) ||
		errors.Is(err, archiveservice.ErrInvalidSnapshotID) ||
		errors.Is(err, archiveservice.ErrEmptyPath)
}

// confirm asks a y/N question on the command's input
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt+" (y/N): ")

	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Error reading user input", "error", err)
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func addIDFlag(cmd *cobra.Command) {
	cmd.Flags().Int("id", 0, "Snapshot ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
}
