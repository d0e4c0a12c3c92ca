package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/roster/internal/config"
)

// keyMap holds the browser's key bindings
type keyMap struct {
	ToggleSort     key.Binding
	ToggleFilter   key.Binding
	RaiseThreshold key.Binding
	LowerThreshold key.Binding
	Quit           key.Binding
}

// newKeyMap builds bindings from the configured mappings. ctrl+c always quits.
func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		ToggleSort: key.NewBinding(
			key.WithKeys(km.ToggleSort),
			key.WithHelp(km.ToggleSort, "sort"),
		),
		ToggleFilter: key.NewBinding(
			key.WithKeys(km.ToggleFilter),
			key.WithHelp(km.ToggleFilter, "filter"),
		),
		RaiseThreshold: key.NewBinding(
			key.WithKeys(km.RaiseThreshold, "up"),
			key.WithHelp(km.RaiseThreshold, "raise min"),
		),
		LowerThreshold: key.NewBinding(
			key.WithKeys(km.LowerThreshold, "down"),
			key.WithHelp(km.LowerThreshold, "lower min"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// shortHelp lists the bindings shown in the footer
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.ToggleSort, k.ToggleFilter, k.RaiseThreshold, k.LowerThreshold, k.Quit}
}
