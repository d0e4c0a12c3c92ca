// Package tui implements "roster browse", a read-only full-screen view of
// the roster with a grade sort toggle and an adjustable minimum grade
package tui

import (
	"context"
	"math"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/roster"
)

// Model represents the browser state
type Model struct {
	store     *roster.Store
	source    string
	byGrade   bool
	filtering bool
	threshold float64
	step      float64
	keys      keyMap
	styles    styles
	width     int
	height    int
}

// New creates a browser over students read from source
func New(students []models.Student, source string, browse config.BrowseConfig, colors config.ColorScheme) Model {
	store := roster.NewStore()
	store.Replace(students)

	step := browse.ThresholdStep
	if step <= 0 {
		step = config.DefaultThresholdStep
	}

	return Model{
		store:     store,
		source:    source,
		threshold: browse.MinGrade,
		step:      step,
		keys:      newKeyMap(browse.KeyMappings),
		styles:    newStyles(colors),
	}
}

// Run starts the browser and blocks until the user quits or ctx is done
func Run(ctx context.Context, m Model) error {
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleSort):
			m.byGrade = !m.byGrade
		case key.Matches(msg, m.keys.ToggleFilter):
			m.filtering = !m.filtering
		case key.Matches(msg, m.keys.RaiseThreshold):
			m.threshold = roundStep(m.threshold + m.step)
		case key.Matches(msg, m.keys.LowerThreshold):
			m.threshold = roundStep(m.threshold - m.step)
		}
	}

	return m, nil
}

// Visible returns the rows the browser currently shows, in display order
func (m Model) Visible() []models.Student {
	var rows []models.Student
	if m.byGrade {
		rows = m.store.SortByGradeDescending()
	} else {
		rows = m.store.Students()
	}

	if !m.filtering {
		return rows
	}

	// Filtering a sorted copy keeps the sorted order
	view := roster.NewStore()
	view.Replace(rows)
	return view.FilterByMinGrade(m.threshold)
}

// Threshold returns the current minimum grade
func (m Model) Threshold() float64 { return m.threshold }

// SortedByGrade reports whether rows are ordered by grade
func (m Model) SortedByGrade() bool { return m.byGrade }

// Filtering reports whether rows below the threshold are hidden
func (m Model) Filtering() bool { return m.filtering }

// roundStep drops the float noise repeated steps accumulate
func roundStep(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
