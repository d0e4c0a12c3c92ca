package archive

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	archiveservice "github.com/thenoetrevino/roster/internal/services/archive"
)

// RestoreCmd returns the archive restore subcommand
func RestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Overwrite the roster file with a snapshot",
		Long: `Write a snapshot's students back to the roster file, replacing its contents
(requires confirmation unless --force or --quiet).

Examples:
  # Restore with confirmation
  roster archive restore --id 3

  # Restore into another file without asking
  roster archive restore --id 3 --file old-students.txt --force
`,
		Args: cobra.NoArgs,
		RunE: runRestore,
	}

	addIDFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddFileFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRestore(cmd *cobra.Command, args []string) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	path := cli.GetDataFile(cmd, s.cli.App.Config)

	if !force && !s.formatter.Quiet && !s.formatter.JSON {
		if !confirm(cmd, fmt.Sprintf("Overwrite '%s' with snapshot #%d?", path, id)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	detail, err := s.service.Restore(cmd.Context(), archiveservice.RestoreRequest{ID: id, Path: path})
	if err != nil {
		return s.fail("RESTORE_ERROR", err)
	}

	if s.formatter.Quiet {
		return nil
	}

	if s.formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":     true,
			"snapshot_id": detail.ID,
			"path":        path,
			"count":       len(detail.Students),
		})
	}

	fmt.Printf("✓ Restored snapshot #%d '%s' to %s (%d students)\n", detail.ID, detail.Label, path, len(detail.Students))
	return nil
}
