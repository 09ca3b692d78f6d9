package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width    int
	Section  string // current section title, "" when the list is empty
	Count    int    // contacts in the current section
	Total    int    // contacts overall
	HelpHint string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: current section and counts
// Right side: the key hint
func RenderStatusBar(props StatusBarProps) string {
	leftText := "no contacts"
	if props.Section != "" {
		leftText = fmt.Sprintf(" %s · %d of %d contacts", props.Section, props.Count, props.Total)
	}
	rightText := props.HelpHint + " "

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	return StatusBarStyle.
		MaxWidth(max(props.Width, 0)).
		Render(leftText + strings.Repeat(" ", gapWidth) + rightText)
}
