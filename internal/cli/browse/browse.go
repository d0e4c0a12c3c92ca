// Package browse holds the command that opens the full-screen roster browser
package browse

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
	"github.com/thenoetrevino/roster/internal/tui"
)

// BrowseCmd returns the browse command
func BrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the roster in a full-screen view",
		Long: `Open a read-only full-screen view of the roster.

Keys (configurable under browse.key_mappings):
  s        toggle file order / grade order
  f        hide students below the minimum grade
  + / -    raise / lower the minimum grade
  q        quit
`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}

	cmd.Flags().Float64("min", 0, "Initial minimum grade (default from config)")
	cli.AddFileFlag(cmd)

	return cmd
}

// loadModel builds the browser model for the command's roster file
func loadModel(cmd *cobra.Command, c *cli.CLI) (tui.Model, error) {
	path := cli.GetDataFile(cmd, c.App.Config)

	students, err := c.App.StudentService.ListStudents(cmd.Context(), studentservice.ListStudentsRequest{Path: path})
	if err != nil {
		return tui.Model{}, err
	}

	browse := c.App.Config.Browse
	if cmd.Flags().Changed("min") {
		if browse.MinGrade, err = handler.NewFlagParser(cmd).ParseFloat("min"); err != nil {
			return tui.Model{}, &cli.ValidationError{Err: err}
		}
	}

	return tui.New(students, path, browse, c.App.Config.ColorScheme), nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
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

	model, err := loadModel(cmd, cliInstance)
	if err != nil {
		return formatter.Fail("ROSTER_LOAD_ERROR", err)
	}

	return tui.Run(ctx, model)
}
