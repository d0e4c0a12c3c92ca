package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/models"
)

// AddFileFlag registers the --file flag shared by every roster command
func AddFileFlag(cmd *cobra.Command) {
	cmd.Flags().String("file", "", fmt.Sprintf("Roster file (default from config, %s env var, or %s)", config.DataFileEnv, config.DefaultDataFile))
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// GetDataFile resolves the roster file: --file flag first, then config
func GetDataFile(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Lookup("file") != nil {
		if path, _ := cmd.Flags().GetString("file"); path != "" {
			return path
		}
	}
	if cfg != nil && cfg.DataFile != "" {
		return cfg.DataFile
	}
	return config.DefaultDataFile
}

// PrintStudents writes one Student{...} line per record
func PrintStudents(w io.Writer, students []models.Student) {
	for _, s := range students {
		fmt.Fprintln(w, s.String())
	}
}
