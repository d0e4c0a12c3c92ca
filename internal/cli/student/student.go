// Package student holds the non-interactive roster commands: list, filter and add
package student

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
)

// Commands returns the student subcommands, registered directly on the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		FilterCmd(),
		AddCmd(),
	}
}

// withCLI runs fn with an initialized CLI and the roster file the command targets
func withCLI(ctx context.Context, cmd *cobra.Command, fn func(c *cli.CLI, path string) (any, error)) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return fn(cliInstance, cli.GetDataFile(cmd, cliInstance.App.Config))
}
