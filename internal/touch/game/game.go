// Package game is the ebiten host of the slider: it draws the label strip
// and the contact list and feeds mouse and touch input to touch.Controller.
package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"

	"charm.land/lipgloss/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/thenoetrevino/alphaslider/internal/config"
	"github.com/thenoetrevino/alphaslider/internal/config/colors"
	"github.com/thenoetrevino/alphaslider/internal/directory"
	"github.com/thenoetrevino/alphaslider/internal/models"
	"github.com/thenoetrevino/alphaslider/internal/slider"
	"github.com/thenoetrevino/alphaslider/internal/touch"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	labelSize       = 20.0
	listSize        = 16.0
	stripHeight     = 48.0
	rowHeight       = 24.0
	indicatorHeight = 3.0
	wheelStep       = 3 * rowHeight
	listIndent      = 16.0
)

// palette holds the theme colors converted for ebiten.
type palette struct {
	background, label, focus, indicator, header, normal, subtle color.Color
}

func newPalette(scheme colors.ColorScheme) palette {
	return palette{
		background: lipgloss.Color(scheme.Background),
		label:      lipgloss.Color(scheme.Label),
		focus:      lipgloss.Color(scheme.FocusLabel),
		indicator:  lipgloss.Color(scheme.Indicator),
		header:     lipgloss.Color(scheme.Header),
		normal:     lipgloss.Color(scheme.Normal),
		subtle:     lipgloss.Color(scheme.Subtle),
	}
}

// Game implements ebiten.Game.
type Game struct {
	ctrl    *touch.Controller
	regular *text.GoTextFace
	bold    *text.GoTextFace
	list    *text.GoTextFace
	colors  palette
	spacing float64

	touchIDs []ebiten.TouchID
}

// New creates the game for the given contacts and config.
func New(cfg *config.Config, contacts []*models.Contact, width, height int) (*Game, error) {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	g := &Game{
		regular: &text.GoTextFace{Source: regularSource, Size: labelSize},
		bold:    &text.GoTextFace{Source: boldSource, Size: labelSize},
		list:    &text.GoTextFace{Source: regularSource, Size: listSize},
		colors:  newPalette(cfg.ColorScheme),
		// Config spacing and inset are in terminal cells; scale to pixels
		spacing: float64(*cfg.Slider.Spacing) * labelSize / 2,
	}

	g.ctrl = touch.NewController(
		touch.Geometry{
			Width:       float64(width),
			Height:      float64(height),
			StripHeight: stripHeight,
			RowHeight:   rowHeight,
		},
		slider.WithMeasurer(slider.MeasureFunc(g.measure)),
		slider.WithSpacing(g.spacing),
		slider.WithInset(float64(*cfg.Slider.Inset)*labelSize/2),
		slider.WithLogger(slog.Default()),
	)
	g.ctrl.SetDirectory(directory.Build(contacts, cfg.Labels(), cfg.List.EntryLines))
	return g, nil
}

// Controller returns the input router.
func (g *Game) Controller() *touch.Controller {
	return g.ctrl
}

// measure reports label advances with the face they are drawn in.
func (g *Game) measure(label string, focused bool) float64 {
	face := g.regular
	if focused {
		face = g.bold
	}
	return text.Advance(label, face)
}

// ============================================================================
// ebiten.Game
// ============================================================================

// Update routes this tick's input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.updateTouches()
	g.updateMouse()

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.ctrl.ScrollBy(-dy * wheelStep)
	}
	return nil
}

func (g *Game) updateTouches() {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.ctrl.Press(int(id), float64(x), float64(y))
	}

	active, ok := g.ctrl.Active()
	if !ok || active == touch.MousePointer {
		return
	}
	id := ebiten.TouchID(active)
	if inpututil.IsTouchJustReleased(id) {
		g.ctrl.Release(active)
		return
	}
	x, y := ebiten.TouchPosition(id)
	g.ctrl.Move(active, float64(x), float64(y))
}

func (g *Game) updateMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctrl.Press(touch.MousePointer, float64(x), float64(y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.ctrl.Release(touch.MousePointer)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctrl.Move(touch.MousePointer, float64(x), float64(y))
	}
}

// Draw paints the list first and the strip over it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.colors.background)
	g.drawList(screen)
	g.drawStrip(screen)
}

// Layout keeps one pixel per device-independent pixel and tracks resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctrl.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// ============================================================================
// Drawing
// ============================================================================

func (g *Game) drawStrip(screen *ebiten.Image) {
	geo := g.ctrl.Geometry()
	vector.DrawFilledRect(screen, 0, 0, float32(geo.Width), stripHeight, g.colors.background, false)

	engine := g.ctrl.Engine()
	selected, ok := engine.Value()
	if !ok {
		return
	}

	baseline := (stripHeight - labelSize) / 2
	for i, label := range engine.Labels() {
		face, clr := g.regular, g.colors.label
		if i == selected {
			face, clr = g.bold, g.colors.focus
		}
		drawText(screen, label, face, engine.LabelX(i), baseline, clr)
	}

	if ind, ok := engine.Indicator(); ok {
		vector.DrawFilledRect(screen,
			float32(ind.X), float32(stripHeight-indicatorHeight-2),
			float32(ind.Width), indicatorHeight,
			g.colors.indicator, false)
	}
}

func (g *Game) drawList(screen *ebiten.Image) {
	dir := g.ctrl.Directory()
	geo := g.ctrl.Geometry()
	top := stripHeight - g.ctrl.Scroll()

	line := 0
	for _, section := range dir.Sections() {
		g.drawRow(screen, top, line, 0, section.Title, g.bold, g.colors.header)
		line++

		if len(section.Contacts) == 0 {
			g.drawRow(screen, top, line, listIndent, "no contacts", g.list, g.colors.subtle)
			line++
		}
		for _, contact := range section.Contacts {
			g.drawRow(screen, top, line, listIndent, contact.Name, g.list, g.colors.normal)
			line++
			if dir.EntryLines() > 1 {
				g.drawRow(screen, top, line, 2*listIndent, contact.Detail, g.list, g.colors.subtle)
				line++
			}
		}
		line++ // separator

		if top+float64(line)*rowHeight > geo.Height {
			return
		}
	}
}

// drawRow draws one list line, skipping lines hidden under the strip.
func (g *Game) drawRow(screen *ebiten.Image, top float64, line int, indent float64, s string, face *text.GoTextFace, clr color.Color) {
	y := top + float64(line)*rowHeight
	if y+rowHeight < stripHeight || s == "" {
		return
	}
	drawText(screen, s, face, listIndent+indent, y+(rowHeight-face.Size)/2, clr)
}

func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
