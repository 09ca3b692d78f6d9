// Package slider implements an alphabet index slider: a row of labels the
// user drags across to pick one of them, kept in sync with an externally
// scrolled view without notification loops.
//
// The package is host agnostic. A host feeds it horizontal pointer
// coordinates and bounds, and receives redraw requests and value-changed
// notifications through callbacks. All methods must be called from one
// goroutine (the host's event loop).
package slider

import "log/slog"

// Indicator is the highlight geometry under the selected label,
// in the same coordinate space as the touches fed to the engine.
type Indicator struct {
	X     float64
	Width float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithMeasurer sets the label measurer. Without one every label measures 0.
func WithMeasurer(m Measurer) Option {
	return func(e *Engine) { e.measure = m }
}

// WithSpacing sets the gap between adjacent labels.
func WithSpacing(spacing float64) Option {
	return func(e *Engine) { e.spacing = spacing }
}

// WithInset sets the horizontal inset applied on both sides of the control.
func WithInset(inset float64) Option {
	return func(e *Engine) { e.inset = inset }
}

// WithRedraw registers the callback fired whenever the control needs repainting.
func WithRedraw(fn func()) Option {
	return func(e *Engine) { e.redraw = fn }
}

// WithOnChange registers the callback fired when a drag moves the value.
func WithOnChange(fn func(value int)) Option {
	return func(e *Engine) { e.onChange = fn }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// Engine owns the slider value, the drag state machine and the label layout.
type Engine struct {
	labels []string
	layout Layout

	measure Measurer
	spacing float64
	inset   float64
	width   float64 // full bounds width, insets included

	value      int
	dragging   bool
	dragOrigin float64
	ownership  Ownership

	redraw   func()
	onChange func(int)
	logger   *slog.Logger
}

// New creates an Engine with an empty label set and zero bounds.
func New(opts ...Option) *Engine {
	e := &Engine{
		labels: []string{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rebuild()
	return e
}

// ============================================================================
// Configuration
// ============================================================================

// SetLabels replaces the label set. The value is clamped into the new range.
// Replacing labels is not a user gesture, so no notification is sent.
func (e *Engine) SetLabels(labels []string) {
	e.labels = append([]string(nil), labels...)
	e.rebuild()
	if len(e.labels) > 0 {
		e.value = e.clamp(e.value)
	} else if e.dragging {
		e.DragEnd()
	}
	e.requestRedraw()
}

// Labels returns a copy of the current label set.
func (e *Engine) Labels() []string {
	return append([]string(nil), e.labels...)
}

// SetBounds sets the full width of the control, insets included.
func (e *Engine) SetBounds(width float64) {
	if width == e.width {
		return
	}
	e.width = width
	e.rebuild()
	e.requestRedraw()
}

// Bounds returns the full width of the control.
func (e *Engine) Bounds() float64 {
	return e.width
}

// SetInset changes the horizontal inset.
func (e *Engine) SetInset(inset float64) {
	if inset == e.inset {
		return
	}
	e.inset = inset
	e.rebuild()
	e.requestRedraw()
}

// Inset returns the horizontal inset.
func (e *Engine) Inset() float64 {
	return e.inset
}

// SetSpacing changes the gap between labels.
func (e *Engine) SetSpacing(spacing float64) {
	if spacing == e.spacing {
		return
	}
	e.spacing = spacing
	e.rebuild()
	e.requestRedraw()
}

// SetMeasurer swaps the measurer, e.g. after a font change.
func (e *Engine) SetMeasurer(m Measurer) {
	e.measure = m
	e.rebuild()
	e.requestRedraw()
}

// Layout returns the current layout cache.
func (e *Engine) Layout() Layout {
	return e.layout
}

// rebuild recomputes the layout from scratch.
func (e *Engine) rebuild() {
	e.layout = Rebuild(e.labels, e.measure, e.spacing, e.availableWidth())
}

func (e *Engine) availableWidth() float64 {
	return max(e.width-2*e.inset, 0)
}

// ============================================================================
// Value
// ============================================================================

// Value returns the selected label index. It reports false while the
// label set is empty.
func (e *Engine) Value() (int, bool) {
	if len(e.labels) == 0 {
		return 0, false
	}
	return e.value, true
}

// Selected returns the selected label, or "" while the label set is empty.
func (e *Engine) Selected() string {
	if len(e.labels) == 0 {
		return ""
	}
	return e.labels[e.value]
}

// SetValue moves the selection programmatically. Out-of-range values are
// clamped. It never notifies: only drags produce value-changed events.
func (e *Engine) SetValue(v int) {
	if len(e.labels) == 0 {
		return
	}
	v = e.clamp(v)
	if v == e.value {
		return
	}
	e.value = v
	e.requestRedraw()
}

// Ownership reports who is currently driving the value.
func (e *Engine) Ownership() Ownership {
	return e.ownership
}

// BeginExternal marks the following SetValue calls as coming from an
// external collaborator. It refuses while the user is dragging, since the
// collaborator is then only echoing the user's own gesture.
func (e *Engine) BeginExternal() bool {
	if e.ownership == UserDragging {
		return false
	}
	e.ownership = ExternallyDriven
	return true
}

// EndExternal clears the marker set by BeginExternal.
func (e *Engine) EndExternal() {
	if e.ownership == ExternallyDriven {
		e.ownership = Idle
	}
}

// Follow is the collaborator path: BeginExternal, SetValue, EndExternal.
// It reports whether the value was accepted.
func (e *Engine) Follow(v int) bool {
	if !e.BeginExternal() {
		return false
	}
	defer e.EndExternal()
	e.SetValue(v)
	return true
}

// Indicator returns the highlight geometry for the selected label.
// It reports false while the label set is empty.
func (e *Engine) Indicator() (Indicator, bool) {
	if len(e.labels) == 0 {
		return Indicator{}, false
	}
	return Indicator{
		X:     e.inset + e.layout.CenterOffset + e.layout.Starts[e.value],
		Width: e.layout.Widths[e.value],
	}, true
}

// LabelX returns the absolute x coordinate of label i's left edge.
func (e *Engine) LabelX(i int) float64 {
	if i < 0 || i >= e.layout.Len() {
		return e.inset + e.layout.CenterOffset
	}
	return e.inset + e.layout.CenterOffset + e.layout.Starts[i]
}

func (e *Engine) clamp(v int) int {
	return max(0, min(v, len(e.labels)-1))
}

// ============================================================================
// Drag gesture
// ============================================================================

// Dragging reports whether a drag gesture is in progress.
func (e *Engine) Dragging() bool {
	return e.dragging
}

// DragStart begins a gesture at absolute x. It is rejected when there are
// no labels. The touched label becomes the value, notifying if it changed.
func (e *Engine) DragStart(x float64) bool {
	if len(e.labels) == 0 {
		e.logger.Debug("slider drag rejected", "reason", "no labels", "x", x)
		return false
	}

	e.ownership = UserDragging
	e.dragging = true
	e.dragOrigin = x

	e.setFromDrag(e.resolve(e.toContent(x)))
	return true
}

// DragUpdate continues a gesture at absolute x. A touch outside the
// touchable area (insets excluded) ends the gesture and is rejected; the
// last value is kept.
func (e *Engine) DragUpdate(x float64) bool {
	if !e.dragging {
		return false
	}
	if len(e.labels) == 0 {
		e.DragEnd()
		return false
	}
	if x <= e.inset || x >= e.width-e.inset {
		e.logger.Debug("slider drag left bounds", "x", x, "value", e.value)
		e.DragEnd()
		return false
	}

	delta := x - e.dragOrigin
	content := e.toContent(e.dragOrigin) + delta
	e.dragOrigin = x

	e.setFromDrag(e.resolve(content))
	return true
}

// DragEnd finishes the gesture. The value is left untouched.
func (e *Engine) DragEnd() {
	e.dragging = false
	e.dragOrigin = 0
	e.ownership = Idle
}

// toContent translates an absolute x into the label row's coordinate space.
func (e *Engine) toContent(x float64) float64 {
	return x - e.inset - e.layout.CenterOffset
}

// resolve maps a content-space x to a label, clamping left of the row to 0.
func (e *Engine) resolve(content float64) int {
	i, ok := e.layout.IndexForOffset(content)
	if !ok {
		return 0
	}
	return e.clamp(i)
}

// setFromDrag applies a drag-resolved index and notifies when it changed.
func (e *Engine) setFromDrag(v int) {
	if v == e.value {
		return
	}
	e.value = v
	e.requestRedraw()
	if e.ownership == UserDragging && e.onChange != nil {
		e.onChange(v)
	}
}

func (e *Engine) requestRedraw() {
	if e.redraw != nil {
		e.redraw()
	}
}
