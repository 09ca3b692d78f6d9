package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/alphaslider/internal/config"
)

// KeyMap holds the key bindings of the list screen, built from the
// configured key mappings.
type KeyMap struct {
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	PrevSection  key.Binding
	NextSection  key.Binding
	FirstSection key.Binding
	LastSection  key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// NewKeyMap builds bindings from key mappings. Arrow keys and ctrl+c are
// always bound alongside the configured keys.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		ScrollUp: key.NewBinding(
			key.WithKeys(km.ScrollUp, "up"),
			key.WithHelp(km.ScrollUp, "up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys(km.ScrollDown, "down"),
			key.WithHelp(km.ScrollDown, "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys(km.PageUp),
			key.WithHelp(km.PageUp, "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys(km.PageDown),
			key.WithHelp(km.PageDown, "page down"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys(km.PrevSection, "left"),
			key.WithHelp(km.PrevSection, "prev"),
		),
		NextSection: key.NewBinding(
			key.WithKeys(km.NextSection, "right"),
			key.WithHelp(km.NextSection, "next"),
		),
		FirstSection: key.NewBinding(
			key.WithKeys(km.FirstSection, "home"),
			key.WithHelp(km.FirstSection, "first"),
		),
		LastSection: key.NewBinding(
			key.WithKeys(km.LastSection, "end"),
			key.WithHelp(km.LastSection, "last"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevSection, k.NextSection, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.PrevSection, k.NextSection, k.FirstSection, k.LastSection},
		{k.Help, k.Quit},
	}
}
