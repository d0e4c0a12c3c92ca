// Package report summarizes a roster as markdown and renders it for the terminal
package report

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/roster"
)

// Summary holds the figures a report is built from
type Summary struct {
	Count     int
	Mean      float64
	Min       float64
	Max       float64
	Threshold float64
	AtOrAbove int
	ByGrade   []models.Student
}

// Summarize computes the summary of students against threshold
func Summarize(students []models.Student, threshold float64) Summary {
	store := roster.NewStore()
	store.Replace(students)

	s := Summary{
		Count:     store.Len(),
		Threshold: threshold,
		AtOrAbove: len(store.FilterByMinGrade(threshold)),
		ByGrade:   store.SortByGradeDescending(),
	}
	if s.Count == 0 {
		return s
	}

	// ByGrade is descending, so the extremes are at its ends
	s.Max = s.ByGrade[0].Grade
	s.Min = s.ByGrade[len(s.ByGrade)-1].Grade
	var total float64
	for _, st := range students {
		total += st.Grade
	}
	s.Mean = total / float64(s.Count)
	return s
}

// Build returns the markdown report for students against threshold
func Build(students []models.Student, threshold float64) string {
	s := Summarize(students, threshold)

	var b strings.Builder
	b.WriteString("# Roster report\n\n")

	if s.Count == 0 {
		b.WriteString("_The roster is empty._\n")
		return b.String()
	}

	fmt.Fprintf(&b, "- **Students:** %d\n", s.Count)
	fmt.Fprintf(&b, "- **Mean grade:** %.2f\n", s.Mean)
	fmt.Fprintf(&b, "- **Lowest grade:** %s\n", models.FormatGrade(s.Min))
	fmt.Fprintf(&b, "- **Highest grade:** %s\n", models.FormatGrade(s.Max))
	fmt.Fprintf(&b, "- **At or above %s:** %d of %d\n\n", models.FormatGrade(s.Threshold), s.AtOrAbove, s.Count)

	b.WriteString("## By grade\n\n")
	b.WriteString("| # | Name | Age | Grade |\n")
	b.WriteString("|---|------|-----|-------|\n")
	for i, st := range s.ByGrade {
		fmt.Fprintf(&b, "| %d | %s | %d | %s |\n", i+1, escapeCell(st.Name), st.Age, models.FormatGrade(st.Grade))
	}

	return b.String()
}

// escapeCell keeps a name from breaking the markdown table
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Render renders markdown for a terminal of the given width. It falls back to
// the raw markdown when rendering fails.
func Render(markdown string, width int) string {
	if width <= 0 {
		width = 80
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
