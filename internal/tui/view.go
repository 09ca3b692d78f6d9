package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/alphaslider/internal/tui/components"
	"github.com/thenoetrevino/alphaslider/internal/tui/layers"
	"github.com/thenoetrevino/alphaslider/internal/tui/state"
	"github.com/thenoetrevino/alphaslider/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewSlider(),
		m.viewList(),
		m.viewStatusBar(),
	)

	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if m.UiState.Mode() == state.HelpMode {
		if layer := m.helpLayer(); layer != nil {
			stack = append(stack, layer)
		}
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// viewSlider returns the slider rows, re-rendering only after the engine
// asked for a redraw.
func (m Model) viewSlider() string {
	if !m.UiState.SliderDirty() {
		return m.UiState.SliderView()
	}

	props := components.SliderProps{
		Labels:  m.Slider.Labels(),
		Start:   m.Slider.LabelX(0),
		Spacing: *m.Config.Slider.Spacing,
		Width:   m.UiState.Width(),
	}
	if v, ok := m.Slider.Value(); ok {
		props.Selected = v
	}
	if ind, ok := m.Slider.Indicator(); ok {
		props.Indicator = ind
	}

	rendered := components.RenderSlider(props)
	m.UiState.SetSliderView(rendered)
	return rendered
}

func (m Model) viewList() string {
	height := m.listHeight()
	placeholder := func(text string) string {
		return lipgloss.Place(m.UiState.Width(), height, lipgloss.Center, lipgloss.Center,
			components.PlaceholderStyle.Render(text))
	}

	if err := m.UiState.Err(); err != nil {
		return placeholder(fmt.Sprintf("could not load contacts: %v", err))
	}
	if m.List.Directory().Len() == 0 {
		return placeholder("no contacts")
	}
	return m.List.View()
}

func (m Model) viewStatusBar() string {
	props := components.StatusBarProps{
		Width:    m.UiState.Width(),
		HelpHint: m.Help.ShortHelpView(m.Keys.ShortHelp()),
	}

	sections := m.List.Directory().Sections()
	for _, s := range sections {
		props.Total += len(s.Contacts)
	}
	if v, ok := m.Slider.Value(); ok && v < len(sections) {
		props.Section = sections[v].Title
		props.Count = len(sections[v].Contacts)
	}
	return components.RenderStatusBar(props)
}

func (m Model) helpLayer() *lipgloss.Layer {
	width := layers.HelpWidth(m.UiState.Width())
	content := components.RenderHelp(components.HelpProps{
		Keys:  m.Config.KeyMappings,
		Width: width - layers.HelpBorderPadding,
	})
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}
