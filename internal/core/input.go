package core

// Action represents a semantic input, abstracted from physical keys and
// mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move selection up a row
	ActionDown           // Down arrow, j - move selection down a row
	ActionLeft           // Left arrow, h - previous swatch
	ActionRight          // Right arrow, l - next swatch
	ActionSelect         // Enter, Space, 1-6, left click - pick a swatch
	ActionNewGame        // N - reset score and start over
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionNewGame:
		return "NewGame"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
