// Package report holds the command that prints a markdown summary of the roster
package report

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	summary "github.com/thenoetrevino/roster/internal/report"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the roster",
		Long: `Print grade statistics and the grade-ordered roster, rendered for the terminal.

Examples:
  roster report --min 3.6

  # Raw markdown, for pasting elsewhere
  roster report --raw > report.md
`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}

	cmd.Flags().Float64("min", 0, "Grade threshold to count students against (default from config)")
	cmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
	cmd.Flags().Int("width", 80, "Word wrap width for rendered output")
	cli.AddFileFlag(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	raw, _ := cmd.Flags().GetBool("raw")
	width, _ := cmd.Flags().GetInt("width")
	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	threshold := cliInstance.App.Config.Browse.MinGrade
	if cmd.Flags().Changed("min") {
		if threshold, err = handler.NewFlagParser(cmd).ParseFloat("min"); err != nil {
			return formatter.Fail("INVALID_FLAGS", &cli.ValidationError{Err: err})
		}
	}

	students, err := cliInstance.App.StudentService.ListStudents(ctx, studentservice.ListStudentsRequest{
		Path: cli.GetDataFile(cmd, cliInstance.App.Config),
	})
	if err != nil {
		return formatter.Fail("ROSTER_LOAD_ERROR", err)
	}

	md := summary.Build(students, threshold)
	if raw {
		fmt.Fprint(os.Stdout, md)
		return nil
	}
	fmt.Fprint(os.Stdout, summary.Render(md, width))
	return nil
}
