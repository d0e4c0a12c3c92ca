package archive

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
)

// ShowCmd returns the archive show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one snapshot with its students",
		Long: `Show a snapshot's label, source and students in their archived order.

Examples:
  roster archive show --id 3
  roster archive show --id 3 --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	addIDFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	detail, err := s.service.GetSnapshot(cmd.Context(), id)
	if err != nil {
		return s.fail("SNAPSHOT_NOT_FOUND", err)
	}

	return s.formatter.Success(detail)
}
