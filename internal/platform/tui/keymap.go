package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-guess/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Pick    key.Binding
	NewGame key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Select, k.NewGame, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Pick},
		{k.NewGame, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "row down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a", "shift+tab"),
			key.WithHelp("left/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d", "tab"),
			key.WithHelp("right/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "guess"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "guess #"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// For direct picks (1-6) slot is the zero-based swatch index, otherwise -1.
func (k KeyMap) Action(msg tea.KeyMsg) (action core.Action, slot int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, -1
	case key.Matches(msg, k.Pick):
		return core.ActionSelect, int(msg.String()[0] - '1')
	case key.Matches(msg, k.Select):
		return core.ActionSelect, -1
	case key.Matches(msg, k.Up):
		return core.ActionUp, -1
	case key.Matches(msg, k.Down):
		return core.ActionDown, -1
	case key.Matches(msg, k.Left):
		return core.ActionLeft, -1
	case key.Matches(msg, k.Right):
		return core.ActionRight, -1
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame, -1
	case key.Matches(msg, k.Help):
		return core.ActionHelp, -1
	}
	return core.ActionNone, -1
}
