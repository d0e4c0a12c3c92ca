package student

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/models"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// FilterCmd returns the filter subcommand
func FilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List students at or above a minimum grade",
		Long: `List the students whose grade is at least --min, in file order.

Examples:
  roster filter --min 3.6
  roster filter --min 3.6 --quiet
`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().Float64("min", 0, "Minimum grade, inclusive (required)")
	cli.AddFileFlag(cmd)
	cli.AddOutputFlags(cmd)

	cmd.RunE = handler.Command(&filterHandler{}, func(cmd *cobra.Command) error {
		return handler.NewArguments(cmd, nil).Require("min")
	})

	return cmd
}

type filterHandler struct{}

func (h *filterHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	minGrade := args.GetFloat64("min", 0)

	return withCLI(ctx, args.GetCmd(), func(c *cli.CLI, path string) (any, error) {
		students, err := c.App.StudentService.FilterStudents(ctx, studentservice.FilterStudentsRequest{
			Path:     path,
			MinGrade: minGrade,
		})
		if err != nil {
			return nil, err
		}

		return &cli.StudentList{
			Title:    fmt.Sprintf("Students with grade >= %s:", models.FormatGrade(minGrade)),
			Students: students,
		}, nil
	})
}
