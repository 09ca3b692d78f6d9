package state

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	NormalMode Mode = iota // Browsing the list and slider
	HelpMode               // Displaying help overlay
)

// UIState manages the user interface state: terminal dimensions, the
// interaction mode and the cached slider rendering.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// sliderView is the last rendered slider, valid while sliderDirty is false
	sliderView  string
	sliderDirty bool

	// err is the last load error, shown instead of the list
	err error
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:        NormalMode,
		sliderDirty: true,
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	if s.width != width {
		s.sliderDirty = true
	}
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// InvalidateSlider marks the cached slider rendering stale.
// It is the slider engine's redraw sink.
func (s *UIState) InvalidateSlider() {
	s.sliderDirty = true
}

// SliderDirty reports whether the slider needs to be re-rendered.
func (s *UIState) SliderDirty() bool {
	return s.sliderDirty
}

// SliderView returns the cached slider rendering.
func (s *UIState) SliderView() string {
	return s.sliderView
}

// SetSliderView stores a fresh slider rendering and clears the dirty flag.
func (s *UIState) SetSliderView(view string) {
	s.sliderView = view
	s.sliderDirty = false
}

// Err returns the last load error.
func (s *UIState) Err() error {
	return s.err
}

// SetErr records a load error.
func (s *UIState) SetErr(err error) {
	s.err = err
}
