package session

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
)

// RunCommand is the RunE of the root command. Errors are reported on the
// command's output and never returned.
func RunCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %s\n", err)
		return nil
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	Report(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cli.GetDataFile(cmd, cliInstance.App.Config))
	return nil
}
