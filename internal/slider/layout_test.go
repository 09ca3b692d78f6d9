package slider

import (
	"testing"
)

func widthsMeasurer(widths map[string]float64) Measurer {
	return MeasureFunc(func(label string, _ bool) float64 {
		return widths[label]
	})
}

func TestRebuild_Empty(t *testing.T) {
	layout := Rebuild(nil, FixedWidth(10), 2, 100)

	if layout.Len() != 0 {
		t.Errorf("Len() = %d, want 0", layout.Len())
	}
	if layout.ContentWidth != 0 {
		t.Errorf("ContentWidth = %v, want 0", layout.ContentWidth)
	}
	if layout.CenterOffset != 50 {
		t.Errorf("CenterOffset = %v, want 50", layout.CenterOffset)
	}
	if _, ok := layout.IndexForOffset(0); ok {
		t.Error("IndexForOffset on empty layout reported ok")
	}
}

func TestRebuild_StartsAreMonotonic(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		widths  map[string]float64
		spacing float64
	}{
		{
			name:    "uniform",
			labels:  []string{"A", "B", "C", "D"},
			widths:  map[string]float64{"A": 8, "B": 8, "C": 8, "D": 8},
			spacing: 2,
		},
		{
			name:    "variable widths",
			labels:  []string{"one", "two", "threethree", "four"},
			widths:  map[string]float64{"one": 21, "two": 23, "threethree": 70, "four": 30},
			spacing: 4,
		},
		{
			name:    "zero width labels",
			labels:  []string{"", "x", ""},
			widths:  map[string]float64{"x": 5},
			spacing: 0,
		},
		{
			name:    "repeated text",
			labels:  []string{"%", "%", "%"},
			widths:  map[string]float64{"%": 9},
			spacing: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := Rebuild(tt.labels, widthsMeasurer(tt.widths), tt.spacing, 1000)

			if layout.Starts[0] != 0 {
				t.Fatalf("Starts[0] = %v, want 0", layout.Starts[0])
			}
			for i := 0; i+1 < layout.Len(); i++ {
				gap := layout.Starts[i+1] - layout.Starts[i]
				want := layout.Widths[i] + tt.spacing
				if gap != want {
					t.Errorf("Starts[%d]-Starts[%d] = %v, want %v", i+1, i, gap, want)
				}
				if gap < 0 {
					t.Errorf("Starts decreased at %d", i)
				}
			}

			var sum float64
			for _, w := range layout.Widths {
				sum += w
			}
			wantContent := sum + tt.spacing*float64(len(tt.labels)-1)
			if layout.ContentWidth != wantContent {
				t.Errorf("ContentWidth = %v, want %v", layout.ContentWidth, wantContent)
			}
		})
	}
}

func TestRebuild_NegativeInputsClamped(t *testing.T) {
	measure := MeasureFunc(func(label string, _ bool) float64 { return -3 })
	layout := Rebuild([]string{"a", "b"}, measure, -5, 10)

	for i, w := range layout.Widths {
		if w != 0 {
			t.Errorf("Widths[%d] = %v, want 0", i, w)
		}
	}
	if layout.Starts[1] != 0 {
		t.Errorf("Starts[1] = %v, want 0", layout.Starts[1])
	}
}

func TestRebuild_Centering(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		width      float64
		spacing    float64
		available  float64
		wantCenter float64
	}{
		{"fits with margin", 3, 10, 0, 100, 35},
		{"exact fit", 4, 10, 0, 40, 0},
		{"overflow is not shrunk", 10, 10, 2, 50, 0},
		{"alphabet in 600", 26, 20, 2, 600, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := make([]string, tt.count)
			layout := Rebuild(labels, FixedWidth(tt.width), tt.spacing, tt.available)

			if layout.CenterOffset != tt.wantCenter {
				t.Errorf("CenterOffset = %v, want %v", layout.CenterOffset, tt.wantCenter)
			}
			if layout.ContentWidth <= tt.available && layout.CenterOffset+layout.ContentWidth > tt.available {
				t.Errorf("centered row overflows: %v + %v > %v", layout.CenterOffset, layout.ContentWidth, tt.available)
			}
		})
	}
}

func TestIndexForOffset_Boundaries(t *testing.T) {
	layout := Rebuild([]string{"a", "b", "c"}, FixedWidth(10), 0, 30)

	tests := []struct {
		x      float64
		want   int
		wantOK bool
	}{
		{-1, 0, false},
		{0, 0, true},
		{9, 0, true},
		{10, 1, true}, // boundary belongs to the right-hand label
		{19.5, 1, true},
		{29, 2, true},
		{35, 2, true}, // past the end clamps to the last label
	}

	for _, tt := range tests {
		got, ok := layout.IndexForOffset(tt.x)
		if ok != tt.wantOK {
			t.Errorf("IndexForOffset(%v) ok = %v, want %v", tt.x, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("IndexForOffset(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestIndexForOffset_ZeroWidthTiesGoRight(t *testing.T) {
	// Three labels all starting at 0: a touch at 0 belongs to the last one.
	layout := Rebuild([]string{"a", "b", "c"}, FixedWidth(0), 0, 30)

	got, ok := layout.IndexForOffset(0)
	if !ok || got != 2 {
		t.Errorf("IndexForOffset(0) = (%d, %v), want (2, true)", got, ok)
	}
}
