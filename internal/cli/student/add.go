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

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a student to the roster file",
		Long: `Load the roster file, append one student and save the file.

Names must not contain a comma or a newline: such a record is written as-is
and will not load back as the same student.

Examples:
  roster add --name Dan --age 21 --grade 3.7
  roster add --name Dan --age 21 --grade 3.7 --json

  # Fill the fields in an interactive form
  roster add --form
`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().String("name", "", "Student name (required)")
	cmd.Flags().Int("age", 0, "Student age (required)")
	cmd.Flags().Float64("grade", 0, "Student grade (required)")
	cmd.Flags().Bool("form", false, "Enter the student in an interactive form")
	cli.AddFileFlag(cmd)
	cli.AddOutputFlags(cmd)

	cmd.RunE = handler.Command(&addHandler{}, func(cmd *cobra.Command) error {
		if useForm, _ := cmd.Flags().GetBool("form"); useForm {
			return nil
		}
		if err := handler.NewArguments(cmd, nil).Require("name", "age", "grade"); err != nil {
			return err
		}
		parser := handler.NewFlagParser(cmd)
		if _, err := parser.ParseString("name"); err != nil {
			return err
		}
		_, err := parser.ParseNonNegativeInt("age")
		return err
	})

	return cmd
}

// addResult is the output of a successful add
type addResult struct {
	Student models.Student `json:"student"`
	Total   int            `json:"total"`
	Path    string         `json:"path"`
}

func (r *addResult) String() string {
	return fmt.Sprintf("Added %s (%d students in %s)", r.Student, r.Total, r.Path)
}

// cancelled is the output of a form the user declined to submit
type cancelled struct{}

func (cancelled) String() string { return "Cancelled" }

type addHandler struct{}

func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	req := studentservice.AddStudentRequest{
		Name:  args.GetString("name", ""),
		Age:   args.GetInt("age", 0),
		Grade: args.GetFloat64("grade", 0),
	}

	return withCLI(ctx, args.GetCmd(), func(c *cli.CLI, path string) (any, error) {
		if args.GetBool("form") {
			form := &studentForm{}
			if err := newStudentForm(form, c.App.Config.ColorScheme).Run(); err != nil {
				return nil, err
			}
			if !form.confirm {
				return &cancelled{}, nil
			}
			var err error
			if req, err = form.request(); err != nil {
				return nil, &cli.ValidationError{Err: err}
			}
		}

		req.Path = path
		result, err := c.App.StudentService.AddStudent(ctx, req)
		if err != nil {
			return nil, err
		}
		return &addResult{Student: result.Student, Total: result.Total, Path: path}, nil
	})
}
