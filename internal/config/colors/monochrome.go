package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:     "#FFFFFF",
		Background: "#000000",

		Label:      "#808080",
		FocusLabel: "#FFFFFF",
		Indicator:  "#FFFFFF",

		Header: "#FFFFFF",
		Normal: "#C0C0C0",
		Subtle: "#606060",

		StatusBarBg:   "#FFFFFF",
		StatusBarText: "#000000",

		HelpBorder: "#C0C0C0",
	}
}
