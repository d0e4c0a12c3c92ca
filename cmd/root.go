// Package cmd assembles roster's command tree
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/archive"
	"github.com/thenoetrevino/roster/internal/cli/browse"
	"github.com/thenoetrevino/roster/internal/cli/report"
	"github.com/thenoetrevino/roster/internal/cli/session"
	"github.com/thenoetrevino/roster/internal/cli/student"
)

// NewRootCmd builds the roster command tree. Without a subcommand it runs
// the interactive session, which reports errors instead of failing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster - keep student grades in a plain text file",
		Long: `Roster keeps student records (name, age, grade) in a comma-separated file.

Run without a subcommand for the interactive session: it shows the roster by
grade, filters it by a minimum grade you enter, appends a student you enter
and saves the file.`,
		Args:          cobra.NoArgs,
		RunE:          session.RunCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.AddFileFlag(rootCmd)

	rootCmd.AddCommand(student.Commands()...)
	rootCmd.AddCommand(archive.ArchiveCmd())
	rootCmd.AddCommand(report.ReportCmd())
	rootCmd.AddCommand(browse.BrowseCmd())

	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCmd())
}

// execute prints the errors commands did not already show, such as unknown
// flags or a missing required flag
func execute(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		rootCmd.PrintErrln("Error:", err.Error())
	}
	return err
}
