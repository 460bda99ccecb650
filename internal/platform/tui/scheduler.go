// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and rendering, locally or
// over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg carries a deferred callback back into the Update loop.
type timerMsg struct {
	fn func()
}

// cmdScheduler implements game.Scheduler on top of tea.Tick. Callbacks run
// inside Update, so the game state is only ever touched from the event loop.
// There is no way to cancel a scheduled callback.
type cmdScheduler struct {
	pending []tea.Cmd
}

// After queues fn to run once d has elapsed.
func (s *cmdScheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{fn: fn}
	}))
}

// drain hands the queued timers to Bubble Tea.
func (s *cmdScheduler) drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
