package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/roster/internal/config"
)

// styles holds the browser's lipgloss styles for one color scheme
type styles struct {
	title   lipgloss.Style
	status  lipgloss.Style
	header  lipgloss.Style
	passing lipgloss.Style
	below   lipgloss.Style
	border  lipgloss.Style
	help    lipgloss.Style
	empty   lipgloss.Style
}

func newStyles(colors config.ColorScheme) styles {
	colors.ApplyDefaults()

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Accent)),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.HeaderFg)).
			Padding(0, 1),
		passing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.PassingFg)).
			Padding(0, 1),
		below: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.BelowFg)).
			Padding(0, 1),
		border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Border)),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(colors.Subtle)),
	}
}
