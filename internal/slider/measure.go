package slider

import "charm.land/lipgloss/v2"

// Measurer reports the rendered width of a label.
// Implementations must be deterministic for a fixed font/style; when the
// font changes the caller hands the engine a new Measurer, which rebuilds
// the layout.
type Measurer interface {
	Measure(label string, focused bool) float64
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(label string, focused bool) float64

// Measure calls f.
func (f MeasureFunc) Measure(label string, focused bool) float64 {
	return f(label, focused)
}

// FixedWidth measures every label as the same width, regardless of style.
type FixedWidth float64

// Measure returns w.
func (w FixedWidth) Measure(string, bool) float64 {
	return float64(w)
}

// LipglossMeasurer measures labels in terminal cells, as rendered by
// the given lipgloss styles.
type LipglossMeasurer struct {
	Normal lipgloss.Style
	Focus  lipgloss.Style
}

// Measure renders the label with the matching style and returns its cell width.
func (m LipglossMeasurer) Measure(label string, focused bool) float64 {
	style := m.Normal
	if focused {
		style = m.Focus
	}
	return float64(lipgloss.Width(style.Render(label)))
}
