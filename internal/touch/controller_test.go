package touch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/alphaslider/internal/directory"
	"github.com/thenoetrevino/alphaslider/internal/models"
	"github.com/thenoetrevino/alphaslider/internal/slider"
)

// Labels A, B, C are 20px wide with no spacing, centered in a 100px strip
// with a 10px inset: A covers [20,40), B [40,60), C [60,80).
//
// The list holds A, B, C sections of 5, 5 and 1 contacts at 20px per line:
// sections start at 0, 140 and 280px and the list scrolls at most to 240px.
var testGeometry = Geometry{Width: 100, Height: 140, StripHeight: 40, RowHeight: 20}

func newTestController(t *testing.T, names ...string) *Controller {
	t.Helper()
	c := NewController(testGeometry,
		slider.WithMeasurer(slider.FixedWidth(20)),
		slider.WithInset(10),
	)

	contacts := make([]*models.Contact, len(names))
	for i, name := range names {
		contacts[i] = &models.Contact{ID: i + 1, Name: name}
	}
	c.SetDirectory(directory.Build(contacts, nil, 1))
	return c
}

func abc() []string {
	return []string{"Aa", "Ab", "Ac", "Ad", "Ae", "Ba", "Bb", "Bc", "Bd", "Be", "Cy"}
}

func value(t *testing.T, c *Controller) int {
	t.Helper()
	v, ok := c.Engine().Value()
	require.True(t, ok)
	return v
}

func TestPressOnStripScrollsList(t *testing.T) {
	c := newTestController(t, abc()...)

	require.True(t, c.Press(MousePointer, 45, 10))
	assert.Equal(t, 1, value(t, c))
	assert.Equal(t, 140.0, c.Scroll())

	id, ok := c.Active()
	assert.True(t, ok)
	assert.Equal(t, MousePointer, id)
}

func TestPressBelowStripIgnored(t *testing.T) {
	c := newTestController(t, abc()...)

	assert.False(t, c.Press(MousePointer, 45, 50))
	_, ok := c.Active()
	assert.False(t, ok)
	assert.Equal(t, 0, value(t, c))
}

// TestFirstPointerOwnsDrag ensures a second finger cannot take over or
// disturb a drag in progress.
func TestFirstPointerOwnsDrag(t *testing.T) {
	c := newTestController(t, abc()...)

	require.True(t, c.Press(0, 45, 10))
	assert.False(t, c.Press(1, 65, 10))
	c.Move(1, 25, 10)
	assert.Equal(t, 1, value(t, c))

	c.Release(1)
	_, ok := c.Active()
	assert.True(t, ok, "releasing another finger keeps the drag")

	c.Move(0, 65, 10)
	assert.Equal(t, 2, value(t, c))
	assert.Equal(t, 240.0, c.Scroll(), "clamped to the end of the list")
}

// TestScrollDuringDragDoesNotMoveSlider ensures list scrolling cannot echo
// into the slider while the user holds it.
func TestScrollDuringDragDoesNotMoveSlider(t *testing.T) {
	c := newTestController(t, abc()...)

	require.True(t, c.Press(MousePointer, 65, 10))
	c.ScrollBy(-100)
	assert.Equal(t, 140.0, c.Scroll())
	assert.Equal(t, 2, value(t, c))

	c.Release(MousePointer)
	assert.Equal(t, slider.Idle, c.Engine().Ownership())
}

// TestScrollMovesSliderWithoutEcho ensures the list drives the slider and
// the slider does not scroll the list back to the section start.
func TestScrollMovesSliderWithoutEcho(t *testing.T) {
	c := newTestController(t, abc()...)

	c.ScrollBy(170)
	assert.Equal(t, 1, value(t, c))
	assert.Equal(t, 170.0, c.Scroll())

	c.ScrollBy(-1000)
	assert.Equal(t, 0, value(t, c))
	assert.Equal(t, 0.0, c.Scroll())
}

func TestDragLeavingStripEnds(t *testing.T) {
	c := newTestController(t, abc()...)

	require.True(t, c.Press(0, 45, 10))
	c.Move(0, 95, 10)

	_, ok := c.Active()
	assert.False(t, ok)
	assert.Equal(t, 1, value(t, c), "value kept when the drag leaves")

	// A new press is accepted again
	assert.True(t, c.Press(2, 25, 10))
	assert.Equal(t, 0, value(t, c))
}

func TestEmptyListRejectsPress(t *testing.T) {
	c := newTestController(t)

	assert.False(t, c.Press(MousePointer, 50, 10))
	_, ok := c.Active()
	assert.False(t, ok)
	c.ScrollBy(50)
	assert.Equal(t, 0.0, c.Scroll())
}

func TestResizeClampsScroll(t *testing.T) {
	c := newTestController(t, abc()...)
	c.ScrollBy(240)
	require.Equal(t, 240.0, c.Scroll())

	// 17 lines of 20px fit once the list is 340px tall
	c.Resize(100, 40+340)
	assert.Equal(t, 0.0, c.Scroll())
	assert.Equal(t, 100.0, c.Engine().Bounds())
}
