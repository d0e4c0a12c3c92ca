package student

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/roster"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// studentForm collects a new student's fields as text
type studentForm struct {
	name    string
	age     string
	grade   string
	confirm bool
}

// newStudentForm builds the huh form behind "add --form"
func newStudentForm(f *studentForm, colors config.ColorScheme) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Enter student name...").
			Validate(validateName).
			Value(&f.name),

		huh.NewInput().
			Key("age").
			Title("Age").
			Placeholder("20").
			Validate(validateAge).
			Value(&f.age),

		huh.NewInput().
			Key("grade").
			Title("Grade").
			Placeholder("3.8").
			Validate(validateGrade).
			Value(&f.grade),

		huh.NewConfirm().
			Key("confirm").
			Title("Add this student?").
			Affirmative("Yes").
			Negative("No").
			Value(&f.confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(formTheme(colors))
}

// request converts validated form values into an add request
func (f *studentForm) request() (studentservice.AddStudentRequest, error) {
	age, err := strconv.Atoi(strings.TrimSpace(f.age))
	if err != nil {
		return studentservice.AddStudentRequest{}, fmt.Errorf("invalid age %q", f.age)
	}
	grade, err := roster.ParseGrade(strings.TrimSpace(f.grade))
	if err != nil {
		return studentservice.AddStudentRequest{}, fmt.Errorf("invalid grade %q", f.grade)
	}
	return studentservice.AddStudentRequest{
		Name:  strings.TrimSpace(f.name),
		Age:   age,
		Grade: grade,
	}, nil
}

func validateName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("name is required")
	}
	if strings.Contains(s, roster.Delimiter) {
		return errors.New("name cannot contain a comma")
	}
	return nil
}

func validateAge(s string) error {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("age must be a whole number")
	}
	if age < 0 {
		return errors.New("age must not be negative")
	}
	return nil
}

func validateGrade(s string) error {
	if _, err := roster.ParseGrade(strings.TrimSpace(s)); err != nil {
		return errors.New("grade must be a number")
	}
	return nil
}

// formTheme matches the form to the configured color scheme
func formTheme(colors config.ColorScheme) huh.Theme {
	colors.ApplyDefaults()

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(colors.Accent)
		subtle := lipgloss.Color(colors.Subtle)
		title := lipgloss.Color(colors.Title)
		errorColor := lipgloss.Color(colors.ErrorFg)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}
