package slider

import "sort"

// Layout is the derived geometry of a label row.
// It is rebuilt as a whole whenever the labels, the measurer, the spacing
// or the available width change; it is never patched in place.
type Layout struct {
	// Widths holds the measured width of each label
	Widths []float64

	// Starts holds the left edge of each label, relative to the row itself
	Starts []float64

	// ContentWidth is the sum of all widths plus the interior spacing
	ContentWidth float64

	// CenterOffset is the left margin that centers the row in the available width.
	// Rows wider than the available width get no margin and simply overflow.
	CenterOffset float64
}

// Rebuild measures every label and lays them out left to right.
//
// Negative widths or spacing are treated as zero so Starts stays
// non-decreasing, which IndexForOffset relies on.
func Rebuild(labels []string, measure Measurer, spacing, availableWidth float64) Layout {
	spacing = max(spacing, 0)

	if len(labels) == 0 {
		return Layout{
			Widths:       []float64{},
			Starts:       []float64{},
			CenterOffset: availableWidth / 2,
		}
	}

	widths := make([]float64, len(labels))
	starts := make([]float64, len(labels))

	var cursor float64
	for i, label := range labels {
		w := 0.0
		if measure != nil {
			w = max(measure.Measure(label, false), 0)
		}
		widths[i] = w
		starts[i] = cursor
		cursor += w + spacing
	}

	// cursor overshoots by one trailing spacing
	contentWidth := cursor - spacing

	return Layout{
		Widths:       widths,
		Starts:       starts,
		ContentWidth: contentWidth,
		CenterOffset: max(availableWidth-contentWidth, 0) / 2,
	}
}

// Len returns the number of labels in the layout.
func (l Layout) Len() int {
	return len(l.Starts)
}

// IndexForOffset returns the label under a content-space x coordinate:
// the greatest i such that Starts[i] <= x. A coordinate exactly on a
// boundary belongs to the label on its right. Coordinates past the last
// label resolve to the last label. It reports false when x lies left of
// the first label or the layout is empty.
func (l Layout) IndexForOffset(x float64) (int, bool) {
	if len(l.Starts) == 0 || x < l.Starts[0] {
		return 0, false
	}

	// First start strictly greater than x; the label we want is just before it.
	next := sort.Search(len(l.Starts), func(i int) bool {
		return l.Starts[i] > x
	})
	return next - 1, true
}
