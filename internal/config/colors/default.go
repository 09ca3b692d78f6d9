package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent:     "#874BFD",
		Background: "#1C1C1C",

		// Slider
		Label:      "#8A8A8A",
		FocusLabel: "#D75FD7",
		Indicator:  "#874BFD",

		// List
		Header: "#D75FD7",
		Normal: "#D0D0D0",
		Subtle: "#585858",

		// Status bar
		StatusBarBg:   "#874BFD", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text

		HelpBorder: "#5F87D7",
	}
}
