package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// StudentList is a titled list of students, the result of list and filter commands
type StudentList struct {
	Title    string
	Students []models.Student
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	switch v := data.(type) {
	case *StudentList:
		return f.Students(v.Title, v.Students)
	case []*models.Snapshot:
		return f.Snapshots(v)
	case *models.SnapshotDetail:
		return f.SnapshotDetail(v)
	}

	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Students outputs a list of students. Quiet mode prints one name per line;
// human mode prints a title followed by one Student{...} line per record.
func (f *OutputFormatter) Students(title string, students []models.Student) error {
	if f.Quiet {
		for _, s := range students {
			fmt.Println(s.Name)
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"count":    len(students),
			"students": students,
		})
	}

	fmt.Println(styles.TitleStyle.Render(title))
	if len(students) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("No students found"))
		return nil
	}
	PrintStudents(os.Stdout, students)
	return nil
}

// Snapshots outputs archived snapshots. Quiet mode prints one ID per line.
func (f *OutputFormatter) Snapshots(snapshots []*models.Snapshot) error {
	if f.Quiet {
		for _, s := range snapshots {
			fmt.Printf("%d\n", s.ID)
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":   true,
			"snapshots": snapshots,
		})
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots found")
		return nil
	}

	fmt.Println(styles.TitleStyle.Render("Snapshots:"))
	for _, s := range snapshots {
		fmt.Printf("  #%d  %s  %s  (%d students, from %s)\n",
			s.ID, s.CreatedAt.Local().Format(time.DateTime), s.Label, s.Count, s.Source)
	}
	return nil
}

// SnapshotDetail outputs one snapshot header followed by its students
func (f *OutputFormatter) SnapshotDetail(detail *models.SnapshotDetail) error {
	if f.Quiet {
		fmt.Printf("%d\n", detail.ID)
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"snapshot": detail,
		})
	}

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Snapshot #%d", detail.ID)))
	fmt.Println(styles.Field("Label", detail.Label))
	fmt.Println(styles.Field("Source", detail.Source))
	fmt.Println(styles.Field("Created", detail.CreatedAt.Local().Format(time.DateTime)))
	fmt.Println(styles.Field("Students", fmt.Sprintf("%d", len(detail.Students))))
	PrintStudents(os.Stdout, detail.Students)
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// Fail outputs err under code and returns it marked as reported
func (f *OutputFormatter) Fail(code string, err error) error {
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ReportedError{Err: err}
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error:"), message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", styles.WarningStyle.Render("Suggestion:"), suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if stringer, ok := data.(fmt.Stringer); ok {
		fmt.Println(stringer.String())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}
