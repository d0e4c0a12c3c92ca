package archive

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// ListCmd returns the archive list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(listSnapshots)),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func listSnapshots(ctx context.Context, args *handler.Arguments) (any, error) {
	s, err := newSession(args.GetCmd())
	if err != nil {
		return nil, err
	}
	defer s.close()

	return s.service.ListSnapshots(ctx)
}
