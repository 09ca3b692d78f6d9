// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/alphaslider/internal/config/colors"
	"github.com/thenoetrevino/alphaslider/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// LabelStyle defines unselected slider labels
	LabelStyle lipgloss.Style

	// FocusLabelStyle defines the selected slider label.
	// It must not add cells: the layout measures labels with LabelStyle.
	FocusLabelStyle lipgloss.Style

	// IndicatorStyle defines the highlight bar under the selected label
	IndicatorStyle lipgloss.Style

	// HeaderStyle defines section titles in the list
	HeaderStyle lipgloss.Style

	// EntryStyle defines contact names
	EntryStyle lipgloss.Style

	// DetailStyle defines the secondary line of a contact
	DetailStyle lipgloss.Style

	// PlaceholderStyle defines the line shown for an empty section
	PlaceholderStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// HelpBoxStyle defines the help overlay (blue border)
	HelpBoxStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Label))

	FocusLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.FocusLabel))

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Indicator))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Header))

	EntryStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	DetailStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.HelpBorder)).
		Padding(1, 2)
}
