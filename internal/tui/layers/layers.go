// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

const (
	HelpMinWidth      = 40
	HelpMaxWidth      = 72
	HelpWidthDivisor  = 2
	HelpBorderPadding = 6 // border + horizontal padding on both sides
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// HelpWidth returns the outer width of the help overlay for a screen width.
func HelpWidth(screenWidth int) int {
	width := min(max(screenWidth/HelpWidthDivisor, HelpMinWidth), HelpMaxWidth)
	return min(width, screenWidth)
}
