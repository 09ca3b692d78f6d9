package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset" toml:"preset"`

	// Primary accent color (indicator, section headers, status bar)
	Accent     string `yaml:"accent" toml:"accent"`
	Background string `yaml:"background" toml:"background"`

	// Slider colors
	Label      string `yaml:"label" toml:"label"`             // Unselected labels
	FocusLabel string `yaml:"focus_label" toml:"focus_label"` // Selected label
	Indicator  string `yaml:"indicator" toml:"indicator"`     // Highlight under the selected label

	// List colors
	Header string `yaml:"header" toml:"header"`
	Normal string `yaml:"normal" toml:"normal"`
	Subtle string `yaml:"subtle" toml:"subtle"` // Muted/placeholder text

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg" toml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text" toml:"status_bar_text"`

	// Help overlay border
	HelpBorder string `yaml:"help_border" toml:"help_border"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	c.MergeOver(*GetPreset(c.Preset))
}

// MergeOver fills every empty field of c from base.
func (c *ColorScheme) MergeOver(base ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, base.Accent)
	fill(&c.Background, base.Background)
	fill(&c.Label, base.Label)
	fill(&c.FocusLabel, base.FocusLabel)
	fill(&c.Indicator, base.Indicator)
	fill(&c.Header, base.Header)
	fill(&c.Normal, base.Normal)
	fill(&c.Subtle, base.Subtle)
	fill(&c.StatusBarBg, base.StatusBarBg)
	fill(&c.StatusBarText, base.StatusBarText)
	fill(&c.HelpBorder, base.HelpBorder)
}

// MergeFrom overrides c with every non-empty field of other.
// A different preset in other replaces the whole base first.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	if other.Preset == "" {
		other.Preset = c.Preset
	}
	other.MergeOver(*c)
	*c = other
}
