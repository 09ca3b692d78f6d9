package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/alphaslider/internal/config"
	"github.com/thenoetrevino/alphaslider/internal/directory"
	"github.com/thenoetrevino/alphaslider/internal/models"
	"github.com/thenoetrevino/alphaslider/internal/slider"
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

func TestRenderSlider_Positions(t *testing.T) {
	props := SliderProps{
		Labels:    []string{"A", "B", "C"},
		Selected:  1,
		Start:     3.5,
		Spacing:   1,
		Indicator: slider.Indicator{X: 5.5, Width: 1},
		Width:     20,
	}

	rows := strings.Split(ansi.Strip(RenderSlider(props)), "\n")
	if len(rows) != SliderRows {
		t.Fatalf("RenderSlider() rows = %d, want %d", len(rows), SliderRows)
	}
	if rows[0] != "   A B C" {
		t.Errorf("label row = %q, want %q", rows[0], "   A B C")
	}
	// B starts at cell 5, the indicator must sit right under it
	if rows[1] != "     "+indicatorGlyph {
		t.Errorf("indicator row = %q, want bar at cell 5", rows[1])
	}
}

func TestRenderSlider_Truncated(t *testing.T) {
	props := SliderProps{
		Labels:    []string{"A", "B", "C", "D", "E"},
		Spacing:   1,
		Indicator: slider.Indicator{X: 0, Width: 1},
		Width:     4,
	}

	for _, row := range strings.Split(RenderSlider(props), "\n") {
		if w := ansi.StringWidth(row); w > 4 {
			t.Errorf("row %q is %d cells wide, want at most 4", ansi.Strip(row), w)
		}
	}
}

func TestRenderSlider_Empty(t *testing.T) {
	result := RenderSlider(SliderProps{Width: 10})
	if result != "\n" {
		t.Errorf("RenderSlider() with no labels = %q, want two blank rows", result)
	}
}

func TestRenderDirectory_LineCountMatchesGeometry(t *testing.T) {
	contacts := []*models.Contact{
		{ID: 1, Name: "Ada Lovelace", Detail: "ada@example.com"},
		{ID: 2, Name: "Alan Turing"},
		{ID: 3, Name: "Cy"},
	}

	for _, entryLines := range []int{1, 2} {
		d := directory.Build(contacts, []string{"A", "B", "C"}, entryLines)
		result := ansi.Strip(RenderDirectory(d))
		lines := strings.Split(result, "\n")

		if len(lines) != d.TotalLines() {
			t.Fatalf("entryLines=%d: %d lines, want %d", entryLines, len(lines), d.TotalLines())
		}
		for i, s := range d.Sections() {
			if got := lines[d.OffsetOf(i)]; got != s.Title {
				t.Errorf("entryLines=%d: line %d = %q, want header %q", entryLines, d.OffsetOf(i), got, s.Title)
			}
		}
		if !strings.Contains(result, "no contacts") {
			t.Errorf("entryLines=%d: empty section B should show a placeholder", entryLines)
		}
		if got := strings.Contains(result, "ada@example.com"); got != (entryLines == 2) {
			t.Errorf("entryLines=%d: detail shown = %v", entryLines, got)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	result := ansi.Strip(RenderStatusBar(StatusBarProps{
		Width:    60,
		Section:  "M",
		Count:    3,
		Total:    42,
		HelpHint: "press ? for help",
	}))

	if !strings.Contains(result, "M · 3 of 42 contacts") {
		t.Errorf("RenderStatusBar() = %q, want section summary", result)
	}
	if !strings.HasSuffix(result, "press ? for help ") {
		t.Errorf("RenderStatusBar() = %q, want help hint on the right", result)
	}
	if w := ansi.StringWidth(result); w != 60 {
		t.Errorf("RenderStatusBar() width = %d, want 60", w)
	}
}

func TestHelpMarkdown_UsesKeyMappings(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.Quit = "x"

	md := HelpMarkdown(km)
	if !strings.Contains(md, "`x` | quit") {
		t.Errorf("HelpMarkdown() should list the remapped quit key:\n%s", md)
	}
	if !strings.Contains(RenderHelp(HelpProps{Keys: km, Width: 50}), "quit") {
		t.Error("RenderHelp() lost the quit entry")
	}
}
