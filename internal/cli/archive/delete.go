package archive

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
)

// DeleteCmd returns the archive delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a snapshot",
		Long: `Delete a snapshot by ID (requires confirmation unless --force or --quiet).

Examples:
  roster archive delete --id 3
  roster archive delete --id 3 --force
`,
		Args: cobra.NoArgs,
		RunE: runDelete,
	}

	addIDFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if !force && !s.formatter.Quiet && !s.formatter.JSON {
		detail, err := s.service.GetSnapshot(cmd.Context(), id)
		if err != nil {
			return s.fail("SNAPSHOT_NOT_FOUND", err)
		}
		if !confirm(cmd, fmt.Sprintf("Delete snapshot #%d '%s'?", detail.ID, detail.Label)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := s.service.DeleteSnapshot(cmd.Context(), id); err != nil {
		return s.fail("DELETE_ERROR", err)
	}

	if s.formatter.Quiet {
		return nil
	}

	if s.formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":     true,
			"snapshot_id": id,
		})
	}

	fmt.Printf("✓ Snapshot %d deleted successfully\n", id)
	return nil
}
