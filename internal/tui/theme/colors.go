package theme

import "github.com/thenoetrevino/alphaslider/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	Background    string
	Label         string
	FocusLabel    string
	Indicator     string
	Header        string
	Normal        string
	Subtle        string
	StatusBarBg   string
	StatusBarText string
	HelpBorder    string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Background = scheme.Background
	Label = scheme.Label
	FocusLabel = scheme.FocusLabel
	Indicator = scheme.Indicator
	Header = scheme.Header
	Normal = scheme.Normal
	Subtle = scheme.Subtle
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
	HelpBorder = scheme.HelpBorder
}
