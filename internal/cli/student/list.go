package student

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students in the roster file",
		Long: `List every student in the roster file, in file order or by grade.

Examples:
  # File order
  roster list

  # Highest grade first
  roster list --sort grade

  # JSON output for scripts
  roster list --sort grade --json

  # Quiet mode (one name per line)
  roster list --quiet
`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().String("sort", "", "Sort order: grade (highest first); file order when empty")
	cli.AddFileFlag(cmd)
	cli.AddOutputFlags(cmd)

	cmd.RunE = handler.Command(&listHandler{}, func(cmd *cobra.Command) error {
		_, err := handler.NewFlagParser(cmd).ParseChoice("sort", "grade")
		return err
	})

	return cmd
}

type listHandler struct{}

func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	byGrade := args.GetString("sort", "") == "grade"

	return withCLI(ctx, args.GetCmd(), func(c *cli.CLI, path string) (any, error) {
		students, err := c.App.StudentService.ListStudents(ctx, studentservice.ListStudentsRequest{
			Path:        path,
			SortByGrade: byGrade,
		})
		if err != nil {
			return nil, err
		}

		title := "Students:"
		if byGrade {
			title = "Sorted by grade:"
		}
		return &cli.StudentList{Title: title, Students: students}, nil
	})
}
