package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/alphaslider/internal/config"
	"github.com/thenoetrevino/alphaslider/internal/database"
	"github.com/thenoetrevino/alphaslider/internal/models"
	"github.com/thenoetrevino/alphaslider/internal/slider"
	"github.com/thenoetrevino/alphaslider/internal/tui/components"
	"github.com/thenoetrevino/alphaslider/internal/tui/state"
)

// Rows taken by the fixed parts of the screen.
const (
	sliderTop     = 0
	statusBarRows = 1
	chromeRows    = components.SliderRows + statusBarRows
)

// ContactsLoadedMsg carries the result of loading the contact list.
type ContactsLoadedMsg struct {
	Contacts []*models.Contact
	Err      error
}

// Model represents the application state for the TUI
type Model struct {
	Ctx     context.Context
	Config  *config.Config
	Repo    database.ContactReader
	Slider  *slider.Engine
	UiState *state.UIState
	List    *state.ListState
	Keys    KeyMap
	Help    help.Model
}

// InitialModel creates the TUI model. Contacts are loaded by Init.
//
// The slider and the list are wired together here: a drag scrolls the list
// through the onChange callback, and list scrolling moves the slider with
// Follow, which the engine refuses while the user is dragging.
func InitialModel(ctx context.Context, repo database.ContactReader, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	uiState := state.NewUIState()
	listState := state.NewListState()

	engine := slider.New(
		slider.WithMeasurer(slider.LipglossMeasurer{
			Normal: components.LabelStyle,
			Focus:  components.FocusLabelStyle,
		}),
		slider.WithSpacing(float64(*cfg.Slider.Spacing)),
		slider.WithInset(float64(*cfg.Slider.Inset)),
		slider.WithRedraw(uiState.InvalidateSlider),
		slider.WithOnChange(func(section int) {
			listState.ScrollToSection(section)
			slog.Debug("list scrolled by slider", "section", section)
		}),
		slider.WithLogger(slog.Default()),
	)

	return Model{
		Ctx:     ctx,
		Config:  cfg,
		Repo:    repo,
		Slider:  engine,
		UiState: uiState,
		List:    listState,
		Keys:    NewKeyMap(cfg.KeyMappings),
		Help:    help.New(),
	}
}

// Init starts loading the contact list.
func (m Model) Init() tea.Cmd {
	return loadContacts(m.Ctx, m.Repo)
}

func loadContacts(ctx context.Context, repo database.ContactReader) tea.Cmd {
	return func() tea.Msg {
		contacts, err := repo.ListContacts(ctx)
		return ContactsLoadedMsg{Contacts: contacts, Err: err}
	}
}

// listHeight returns the number of rows left for the list.
func (m Model) listHeight() int {
	return max(m.UiState.Height()-chromeRows, 1)
}

// syncSliderFromList moves the slider to the section at the top of the
// list. Refused by the engine while a drag is in progress.
func (m Model) syncSliderFromList() {
	if m.List.Directory().Len() == 0 {
		return
	}
	m.Slider.Follow(m.List.TopSection())
}

// jumpToSection scrolls the list to section i and moves the slider there.
// The slider is set directly since a short last section may never reach
// the top of the list.
func (m Model) jumpToSection(i int) {
	n := m.List.Directory().Len()
	if n == 0 || m.Slider.Dragging() {
		return
	}
	i = max(0, min(i, n-1))
	m.List.ScrollToSection(i)
	m.Slider.Follow(i)
}
