package components

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/alphaslider/internal/slider"
)

// SliderRows is the height of the rendered slider: labels plus indicator.
const SliderRows = 2

const indicatorGlyph = "▔"

type SliderProps struct {
	Labels    []string
	Selected  int     // index of the focused label, ignored when Labels is empty
	Start     float64 // absolute x of the first label's left edge
	Spacing   int
	Indicator slider.Indicator
	Width     int
}

// RenderSlider renders the label row with the indicator underneath.
//
//	   A B C D E F G
//	       ▔
//
// Positions come from the engine's layout; cells are floored so labels and
// indicator stay aligned when the centering offset is fractional.
func RenderSlider(props SliderProps) string {
	if len(props.Labels) == 0 {
		return strings.Repeat("\n", SliderRows-1)
	}

	var row strings.Builder
	row.WriteString(strings.Repeat(" ", cells(props.Start)))
	gap := strings.Repeat(" ", max(props.Spacing, 0))
	for i, label := range props.Labels {
		if i > 0 {
			row.WriteString(gap)
		}
		if i == props.Selected {
			row.WriteString(FocusLabelStyle.Render(label))
		} else {
			row.WriteString(LabelStyle.Render(label))
		}
	}

	bar := strings.Repeat(" ", cells(props.Indicator.X)) +
		IndicatorStyle.Render(strings.Repeat(indicatorGlyph, cells(props.Indicator.Width)))

	clip := lipgloss.NewStyle().MaxWidth(max(props.Width, 0))
	return clip.Render(row.String()) + "\n" + clip.Render(bar)
}

func cells(x float64) int {
	return max(int(math.Floor(x)), 0)
}
