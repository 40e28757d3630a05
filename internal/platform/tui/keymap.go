package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruitbox/internal/core"
)

// KeyMap defines the keyboard shortcuts. The board itself is mouse-only.
type KeyMap struct {
	Reset key.Binding
	Light key.Binding
	Music key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings for the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Light, k.Music, k.Quit}
}

// FullHelp returns all bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Light: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "light colors"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a host action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Light):
		return core.ActionToggleLight
	case key.Matches(msg, k.Music):
		return core.ActionToggleMusic
	}
	return core.ActionNone
}

// WithoutMusic disables the music binding, for hosts that cannot play audio.
func (k KeyMap) WithoutMusic() KeyMap {
	k.Music.SetEnabled(false)
	return k
}
