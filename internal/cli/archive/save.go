package archive

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	archiveservice "github.com/thenoetrevino/roster/internal/services/archive"
)

// SaveCmd returns the archive save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Snapshot the roster file into the archive",
		Long: `Load the roster file and store its records as a new snapshot.

Examples:
  roster archive save --label "before term two"

  # Quiet mode prints only the new snapshot ID
  roster archive save --label nightly --quiet
`,
		Args: cobra.NoArgs,
		RunE: runSave,
	}

	cmd.Flags().String("label", "", "Snapshot label (required)")
	cli.AddFileFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	label, _ := cmd.Flags().GetString("label")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	snapshot, err := s.service.SaveSnapshot(cmd.Context(), archiveservice.SaveSnapshotRequest{
		Label: label,
		Path:  cli.GetDataFile(cmd, s.cli.App.Config),
	})
	if err != nil {
		return s.fail("SAVE_ERROR", err)
	}

	if s.formatter.Quiet || s.formatter.JSON {
		return s.formatter.Success(snapshot)
	}

	fmt.Printf("✓ Snapshot #%d '%s' saved (%d students)\n", snapshot.ID, snapshot.Label, snapshot.Count)
	return nil
}
