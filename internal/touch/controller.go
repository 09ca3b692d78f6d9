// Package touch routes pointer input for the graphical host: it decides
// which pointer owns the slider, scrolls the contact list in pixels and
// keeps the slider and the list in step.
//
// Nothing here depends on a windowing library, so the routing is testable
// headless; package game feeds it from ebiten.
package touch

import (
	"github.com/thenoetrevino/alphaslider/internal/directory"
	"github.com/thenoetrevino/alphaslider/internal/slider"
)

// MousePointer is the pointer ID used for the left mouse button.
// Touch IDs are never negative.
const MousePointer = -1

const noPointer = -2

// Geometry describes the screen in pixels.
type Geometry struct {
	Width       float64
	Height      float64
	StripHeight float64 // slider strip along the top edge
	RowHeight   float64 // height of one list line
}

// ListHeight returns the pixel height left for the list.
func (g Geometry) ListHeight() float64 {
	return max(g.Height-g.StripHeight, 0)
}

// Controller owns the list scroll position and the pointer that is
// currently dragging the slider.
type Controller struct {
	engine *slider.Engine
	dir    *directory.Directory
	geo    Geometry

	scroll float64 // list offset in pixels
	active int     // pointer dragging the slider, noPointer when idle
}

// NewController wires an engine built with opts to a list. The engine's
// value-changed callback scrolls the list; opts must not set another one.
func NewController(geo Geometry, opts ...slider.Option) *Controller {
	c := &Controller{
		dir:    directory.Build(nil, nil, 1),
		geo:    geo,
		active: noPointer,
	}
	opts = append(opts, slider.WithOnChange(c.scrollToSection))
	c.engine = slider.New(opts...)
	c.engine.SetBounds(geo.Width)
	return c
}

// Engine returns the slider engine.
func (c *Controller) Engine() *slider.Engine {
	return c.engine
}

// Directory returns the list being shown.
func (c *Controller) Directory() *directory.Directory {
	return c.dir
}

// Geometry returns the current screen geometry.
func (c *Controller) Geometry() Geometry {
	return c.geo
}

// Scroll returns the list offset in pixels.
func (c *Controller) Scroll() float64 {
	return c.scroll
}

// SetDirectory replaces the list and the slider labels.
func (c *Controller) SetDirectory(dir *directory.Directory) {
	c.dir = dir
	c.engine.SetLabels(dir.Labels())
	c.setScroll(c.scroll)
	c.follow()
}

// Resize updates the screen geometry.
func (c *Controller) Resize(width, height float64) {
	if width == c.geo.Width && height == c.geo.Height {
		return
	}
	c.geo.Width, c.geo.Height = width, height
	c.engine.SetBounds(width)
	c.setScroll(c.scroll)
}

// ============================================================================
// Pointer routing
// ============================================================================

// Press starts a slider drag when the pointer lands on the strip and no
// other pointer is dragging. It reports whether the pointer took the slider.
func (c *Controller) Press(id int, x, y float64) bool {
	if c.active != noPointer || !c.inStrip(y) {
		return false
	}
	if !c.engine.DragStart(x) {
		return false
	}
	c.active = id
	return true
}

// Move feeds the dragging pointer's position to the slider. Other pointers
// are ignored. A drag that leaves the touchable area ends there.
func (c *Controller) Move(id int, x, y float64) {
	if id != c.active {
		return
	}
	if !c.engine.DragUpdate(x) {
		c.active = noPointer
	}
}

// Release ends the drag if id owns it.
func (c *Controller) Release(id int) {
	if id != c.active {
		return
	}
	c.engine.DragEnd()
	c.active = noPointer
}

// Active returns the pointer dragging the slider.
func (c *Controller) Active() (int, bool) {
	return c.active, c.active != noPointer
}

func (c *Controller) inStrip(y float64) bool {
	return y >= 0 && y < c.geo.StripHeight
}

// ============================================================================
// List scrolling
// ============================================================================

// ScrollBy moves the list by dy pixels and lets the slider follow.
func (c *Controller) ScrollBy(dy float64) {
	before := c.scroll
	c.setScroll(c.scroll + dy)
	if c.scroll != before {
		c.follow()
	}
}

// TopLine returns the list line at the top of the visible area.
func (c *Controller) TopLine() int {
	if c.geo.RowHeight <= 0 {
		return 0
	}
	return int(c.scroll / c.geo.RowHeight)
}

func (c *Controller) maxScroll() float64 {
	content := float64(c.dir.TotalLines()) * c.geo.RowHeight
	return max(content-c.geo.ListHeight(), 0)
}

func (c *Controller) setScroll(y float64) {
	c.scroll = max(0, min(y, c.maxScroll()))
}

// scrollToSection is the slider's value-changed callback.
func (c *Controller) scrollToSection(section int) {
	c.setScroll(float64(c.dir.OffsetOf(section)) * c.geo.RowHeight)
}

// follow moves the slider to the section at the top of the list.
func (c *Controller) follow() {
	if c.dir.Len() == 0 {
		return
	}
	c.engine.Follow(c.dir.SectionAt(c.TopLine()))
}
