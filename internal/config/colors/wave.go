package colors

// Wave returns a blue color scheme inspired by kanagawa-wave
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent:     "#7E9CD8",
		Background: "#1F1F28",

		Label:      "#727169",
		FocusLabel: "#E6C384",
		Indicator:  "#7E9CD8",

		Header: "#957FB8",
		Normal: "#DCD7BA",
		Subtle: "#54546D",

		StatusBarBg:   "#2D4F67",
		StatusBarText: "#DCD7BA",

		HelpBorder: "#7FB4CA",
	}
}
