package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/alphaslider/internal/directory"
	"github.com/thenoetrevino/alphaslider/internal/tui/components"
	"github.com/thenoetrevino/alphaslider/internal/tui/state"
)

// wheelLines is how far one wheel notch scrolls the list.
const wheelLines = 3

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case ContactsLoadedMsg:
		m.handleContactsLoaded(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.Slider.SetBounds(float64(msg.Width))
		m.List.SetSize(msg.Width, m.listHeight())
		m.syncSliderFromList()
		return m, nil

	case tea.MouseClickMsg:
		if m.UiState.Mode() != state.NormalMode {
			return m, nil
		}
		if msg.Button == tea.MouseLeft && isSliderRow(msg.Y) {
			m.Slider.DragStart(cellCenter(msg.X))
		}
		return m, nil

	case tea.MouseMotionMsg:
		if m.UiState.Mode() == state.NormalMode && m.Slider.Dragging() {
			m.Slider.DragUpdate(cellCenter(msg.X))
		}
		return m, nil

	case tea.MouseReleaseMsg:
		m.Slider.DragEnd()
		return m, nil

	case tea.MouseWheelMsg:
		if m.UiState.Mode() != state.NormalMode {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseWheelUp:
			m.scrollList(-wheelLines)
		case tea.MouseWheelDown:
			m.scrollList(wheelLines)
		}
		return m, nil

	case tea.KeyPressMsg:
		if m.UiState.Mode() == state.HelpMode {
			return m.handleHelpMode(msg)
		}
		return m.handleNormalMode(msg)
	}

	return m, nil
}

// ============================================================================
// DATA
// ============================================================================

func (m Model) handleContactsLoaded(msg ContactsLoadedMsg) {
	if msg.Err != nil {
		slog.Error("failed to load contacts", "error", msg.Err)
		m.UiState.SetErr(msg.Err)
		return
	}

	m.UiState.SetErr(nil)
	dir := directory.Build(msg.Contacts, m.Config.Labels(), m.Config.List.EntryLines)
	m.List.SetDirectory(dir, components.RenderDirectory(dir))
	m.Slider.SetLabels(dir.Labels())
	m.syncSliderFromList()

	slog.Info("contacts loaded", "contacts", len(msg.Contacts), "sections", dir.Len())
}

// ============================================================================
// INPUT
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.UiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.Keys.ScrollUp):
		m.scrollList(-1)
	case key.Matches(msg, m.Keys.ScrollDown):
		m.scrollList(1)
	case key.Matches(msg, m.Keys.PageUp):
		m.scrollList(-m.List.Height())
	case key.Matches(msg, m.Keys.PageDown):
		m.scrollList(m.List.Height())
	case key.Matches(msg, m.Keys.PrevSection):
		m.jumpToSection(m.currentSection() - 1)
	case key.Matches(msg, m.Keys.NextSection):
		m.jumpToSection(m.currentSection() + 1)
	case key.Matches(msg, m.Keys.FirstSection):
		m.jumpToSection(0)
	case key.Matches(msg, m.Keys.LastSection):
		m.jumpToSection(m.List.Directory().Len() - 1)
	}
	return m, nil
}

// handleHelpMode handles input in the help overlay.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", " ":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// scrollList scrolls the list and lets the slider follow.
func (m Model) scrollList(delta int) {
	if m.List.ScrollBy(delta) {
		m.syncSliderFromList()
	}
}

// currentSection is the slider's value, or the top section when the
// slider has no labels yet.
func (m Model) currentSection() int {
	if v, ok := m.Slider.Value(); ok {
		return v
	}
	return m.List.TopSection()
}

func isSliderRow(y int) bool {
	return y >= sliderTop && y < sliderTop+components.SliderRows
}

// cellCenter maps a terminal column to the x coordinate of its center,
// matching the floored positions the slider is drawn at.
func cellCenter(x int) float64 {
	return float64(x) + 0.5
}
