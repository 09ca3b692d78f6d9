package state

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/alphaslider/internal/directory"
	"github.com/thenoetrevino/alphaslider/internal/models"
)

// newTestList builds sections A, B, C with 5, 5 and 1 contacts, one line each.
// Offsets: A=0, B=7, C=14; total 17 lines.
func newTestList(t *testing.T, height int) *ListState {
	t.Helper()
	var contacts []*models.Contact
	for _, prefix := range []string{"A", "B"} {
		for i := 0; i < 5; i++ {
			contacts = append(contacts, &models.Contact{Name: prefix + strings.Repeat("x", i+1)})
		}
	}
	contacts = append(contacts, &models.Contact{Name: "Cy"})

	dir := directory.Build(contacts, nil, 1)
	lines := make([]string, dir.TotalLines())
	for i := range lines {
		lines[i] = "line"
	}

	s := NewListState()
	s.SetSize(20, height)
	s.SetDirectory(dir, strings.Join(lines, "\n"))
	return s
}

func TestListState_ScrollBy(t *testing.T) {
	s := newTestList(t, 5)

	if !s.ScrollBy(3) {
		t.Fatal("ScrollBy(3) = false, want true")
	}
	if s.Offset() != 3 {
		t.Errorf("Offset() = %d, want 3", s.Offset())
	}
	if s.TopSection() != 0 {
		t.Errorf("TopSection() = %d, want 0", s.TopSection())
	}

	s.ScrollBy(4)
	if s.TopSection() != 1 {
		t.Errorf("TopSection() at offset %d = %d, want 1", s.Offset(), s.TopSection())
	}

	// Already at the top: no movement
	s.ScrollBy(-100)
	if s.ScrollBy(-1) {
		t.Error("ScrollBy(-1) at the top = true, want false")
	}
}

func TestListState_ScrollToSection(t *testing.T) {
	s := newTestList(t, 5)

	s.ScrollToSection(1)
	if s.Offset() != 7 {
		t.Errorf("Offset() = %d, want 7", s.Offset())
	}
	if s.TopSection() != 1 {
		t.Errorf("TopSection() = %d, want 1", s.TopSection())
	}
}

// TestListState_ScrollToSection_PastEnd ensures a short last section scrolls
// as far as the list allows instead of past the content.
func TestListState_ScrollToSection_PastEnd(t *testing.T) {
	s := newTestList(t, 5)

	s.ScrollToSection(2)
	if s.Offset() != 17-5 {
		t.Errorf("Offset() = %d, want %d", s.Offset(), 17-5)
	}
}

func TestListState_SetDirectoryKeepsOffset(t *testing.T) {
	s := newTestList(t, 5)
	s.ScrollBy(4)

	dir := s.Directory()
	s.SetDirectory(dir, strings.Repeat("line\n", dir.TotalLines()-1)+"line")
	if s.Offset() != 4 {
		t.Errorf("Offset() after SetDirectory = %d, want 4", s.Offset())
	}
}
