package config

// KeyMappings defines the configurable key bindings of the roster browser
type KeyMappings struct {
	ToggleSort     string `yaml:"toggle_sort"`
	ToggleFilter   string `yaml:"toggle_filter"`
	RaiseThreshold string `yaml:"raise_threshold"`
	LowerThreshold string `yaml:"lower_threshold"`
	Quit           string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key bindings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		ToggleSort:     "s",
		ToggleFilter:   "f",
		RaiseThreshold: "+",
		LowerThreshold: "-",
		Quit:           "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.ToggleSort == "" {
		k.ToggleSort = defaults.ToggleSort
	}
	if k.ToggleFilter == "" {
		k.ToggleFilter = defaults.ToggleFilter
	}
	if k.RaiseThreshold == "" {
		k.RaiseThreshold = defaults.RaiseThreshold
	}
	if k.LowerThreshold == "" {
		k.LowerThreshold = defaults.LowerThreshold
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
