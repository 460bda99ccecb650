package tui

import (
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-guess/internal/config"
	"github.com/vovakirdan/color-guess/internal/core"
	"github.com/vovakirdan/color-guess/internal/game"
	"github.com/vovakirdan/color-guess/internal/options"
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	ctrl     *game.Controller
	board    *Board
	sched    *cmdScheduler
	screen   *core.Screen
	gameCfg  config.GameConfig
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model. A nil renderer uses the default
// one and a nil logger discards output.
func NewModel(gameCfg config.GameConfig, cfg core.RuntimeConfig, r *lipgloss.Renderer, logger *log.Logger) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := &Board{}
	sched := &cmdScheduler{}
	gen := options.NewGenerator(rand.New(rand.NewSource(cfg.ResolveSeed())))

	h := help.New()
	h.ShowAll = false

	return Model{
		ctrl:     game.NewController(gen, board, sched, gameCfg.Delay()),
		board:    board,
		sched:    sched,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		gameCfg:  gameCfg,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		renderer: r,
		logger:   logger,
	}
}

// Init starts the first round.
func (m Model) Init() tea.Cmd {
	m.ctrl.ResetGame()
	m.logger.Debug("game started", "target", m.ctrl.Round().Target, "options", len(m.ctrl.Round().Options))
	return m.sched.drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case timerMsg:
		msg.fn()
		return m, m.sched.drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, slot := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionNewGame:
		m.ctrl.ResetGame()
		m.logger.Debug("new game", "target", m.ctrl.Round().Target)

	case core.ActionLeft:
		m.board.Move(-1)
	case core.ActionRight:
		m.board.Move(1)
	case core.ActionUp:
		m.board.MoveRow(-1)
	case core.ActionDown:
		m.board.MoveRow(1)

	case core.ActionSelect:
		if slot < 0 {
			slot = m.board.Cursor()
		}
		m.guess(slot)

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, m.sched.drain()
}

// handleMouse selects the swatch under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if i := m.layout().hit(msg.X, msg.Y); i >= 0 {
		m.guess(i)
	}
	return m, m.sched.drain()
}

// guess submits swatch i and logs the outcome.
func (m Model) guess(i int) {
	target := m.ctrl.Round().Target
	if !m.board.Select(i) {
		return
	}
	m.logger.Debug("guess",
		"slot", i+1,
		"target", target,
		"result", m.ctrl.Feedback(),
		"score", m.ctrl.Score(),
	)
}

// helpView renders the key help footer.
func (m Model) helpView() string {
	return m.help.View(m.keys)
}

// layout computes positions for the area above the help footer.
func (m Model) layout() boardLayout {
	h := m.config.ScreenH - lipgloss.Height(m.helpView())
	return computeLayout(m.config.ScreenW, h, m.board.Len(), m.gameCfg.Display)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	l := m.layout()
	m.screen.Resize(l.width, max(l.height, 0))
	m.board.Render(m.screen, l, m.gameCfg.Feedback)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen, m.renderer))
	sb.WriteRune('\n')
	sb.WriteString(m.helpView())
	return sb.String()
}

// Controller exposes the game controller driven by this model.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// Run starts the Bubble Tea program locally.
func Run(gameCfg config.GameConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(gameCfg, cfg, lipgloss.DefaultRenderer(), logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Swatches are clickable
	)

	_, err := p.Run()
	return err
}
