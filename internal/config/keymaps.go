package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// List scrolling
	ScrollUp   string `yaml:"scroll_up" toml:"scroll_up"`
	ScrollDown string `yaml:"scroll_down" toml:"scroll_down"`
	PageUp     string `yaml:"page_up" toml:"page_up"`
	PageDown   string `yaml:"page_down" toml:"page_down"`

	// Section jumps
	PrevSection  string `yaml:"prev_section" toml:"prev_section"`
	NextSection  string `yaml:"next_section" toml:"next_section"`
	FirstSection string `yaml:"first_section" toml:"first_section"`
	LastSection  string `yaml:"last_section" toml:"last_section"`

	// Other
	ShowHelp string `yaml:"show_help" toml:"show_help"`
	Quit     string `yaml:"quit" toml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		ScrollUp:   "k",
		ScrollDown: "j",
		PageUp:     "pgup",
		PageDown:   "pgdown",

		PrevSection:  "h",
		NextSection:  "l",
		FirstSection: "g",
		LastSection:  "G",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.ScrollUp == "" {
		k.ScrollUp = defaults.ScrollUp
	}
	if k.ScrollDown == "" {
		k.ScrollDown = defaults.ScrollDown
	}
	if k.PageUp == "" {
		k.PageUp = defaults.PageUp
	}
	if k.PageDown == "" {
		k.PageDown = defaults.PageDown
	}
	if k.PrevSection == "" {
		k.PrevSection = defaults.PrevSection
	}
	if k.NextSection == "" {
		k.NextSection = defaults.NextSection
	}
	if k.FirstSection == "" {
		k.FirstSection = defaults.FirstSection
	}
	if k.LastSection == "" {
		k.LastSection = defaults.LastSection
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
