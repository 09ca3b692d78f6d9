package state

import (
	"charm.land/bubbles/v2/viewport"
	"github.com/thenoetrevino/alphaslider/internal/directory"
)

// ListState holds the sectioned contact list and its scroll position.
type ListState struct {
	dir      *directory.Directory
	viewport viewport.Model
}

// NewListState creates an empty list.
func NewListState() *ListState {
	vp := viewport.New()
	vp.MouseWheelEnabled = false
	return &ListState{
		dir:      directory.Build(nil, nil, 1),
		viewport: vp,
	}
}

// Directory returns the current directory.
func (s *ListState) Directory() *directory.Directory {
	return s.dir
}

// SetDirectory replaces the list content, keeping the scroll position
// when it is still in range.
func (s *ListState) SetDirectory(dir *directory.Directory, content string) {
	s.dir = dir
	offset := s.viewport.YOffset()
	s.viewport.SetContent(content)
	s.viewport.SetYOffset(offset)
}

// SetSize resizes the visible area.
func (s *ListState) SetSize(width, height int) {
	s.viewport.SetWidth(max(width, 0))
	s.viewport.SetHeight(max(height, 1))
}

// Height returns the number of visible lines.
func (s *ListState) Height() int {
	return s.viewport.Height()
}

// Offset returns the first visible line.
func (s *ListState) Offset() int {
	return s.viewport.YOffset()
}

// ScrollBy moves the list by delta lines and reports whether it moved.
func (s *ListState) ScrollBy(delta int) bool {
	before := s.viewport.YOffset()
	s.viewport.SetYOffset(before + delta)
	return s.viewport.YOffset() != before
}

// ScrollToSection puts the header of section i at the top of the list,
// or as close as the list length allows.
func (s *ListState) ScrollToSection(i int) {
	s.viewport.SetYOffset(s.dir.OffsetOf(i))
}

// TopSection returns the index of the section showing at the top.
func (s *ListState) TopSection() int {
	return s.dir.SectionAt(s.viewport.YOffset())
}

// View renders the visible part of the list.
func (s *ListState) View() string {
	return s.viewport.View()
}
