package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/roster/internal/models"
)

// View implements tea.Model
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	rows := m.Visible()

	order := "file order"
	if m.byGrade {
		order = "by grade"
	}
	title := m.styles.title.Render(fmt.Sprintf("Roster: %s (%d of %d students, %s)", m.source, len(rows), m.store.Len(), order))

	filter := "off"
	if m.filtering {
		filter = "on"
	}
	status := m.styles.status.Render(fmt.Sprintf("min grade %s, filter %s", models.FormatGrade(m.threshold), filter))

	var body string
	if len(rows) == 0 {
		body = m.styles.empty.Render("No students to show")
	} else {
		body = m.table(rows)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, status, "", body, "", m.help())
}

func (m Model) table(rows []models.Student) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.border).
		Headers("#", "Name", "Age", "Grade").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.header
			}
			if rows[row].Grade >= m.threshold {
				return m.styles.passing
			}
			return m.styles.below
		})

	for i, s := range rows {
		t.Row(strconv.Itoa(i+1), s.Name, strconv.Itoa(s.Age), models.FormatGrade(s.Grade))
	}

	if m.width > 0 {
		t.Width(m.width)
	}
	return t.String()
}

func (m Model) help() string {
	var parts []string
	for _, b := range m.keys.shortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.help.Render(strings.Join(parts, " • "))
}
