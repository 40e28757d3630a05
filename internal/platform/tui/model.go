package tui

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hako/durafmt"

	"github.com/vovakirdan/fruitbox/internal/core"
	"github.com/vovakirdan/fruitbox/internal/games/fruitbox"
)

// statusLines is the number of rows below the board: status bar and help.
const statusLines = 2

var (
	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#1f2937")).
			Padding(0, 1)
	timerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game      *fruitbox.Game
	screen    *core.Screen
	painter   *Painter
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	timer     progress.Model
	logger    *log.Logger
	lastTick  time.Time
	gameState core.GameState
	notice    string // Last non-fatal problem, shown in the status bar
	quitting  bool
}

// NewModel creates a model for the given game. A nil painter renders to
// stdout; a nil logger discards logs.
func NewModel(game *fruitbox.Game, cfg core.RuntimeConfig, painter *Painter, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if painter == nil {
		painter = NewPainter(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		painter: painter,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		timer: progress.New(
			progress.WithGradient(string(fruitbox.ColorTimerTop), string(fruitbox.ColorTimerBottom)),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
		logger: logger,
	}
}

// WithKeys replaces the key bindings.
func (m Model) WithKeys(k KeyMap) Model {
	m.keys = k
	return m
}

func boardHeight(screenH int) int {
	return max(0, screenH-statusLines)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	rc := m.config
	rc.ScreenH = boardHeight(rc.ScreenH)
	m.game.Reset(rc)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit
	case core.ActionReset:
		m.game.RequestReset()
		m.notice = ""
	case core.ActionToggleLight:
		m.game.SetLight(!m.game.Light())
	case core.ActionToggleMusic:
		if err := m.game.ToggleMusic(); err != nil {
			m.logger.Warn("music toggle failed", "error", err)
			m.notice = "music unavailable"
		}
	}
	return m, nil
}

// handleMouse forwards left-button gestures as pointer events. A release
// reports its position as a move first, since the game ends drags at the
// last reported point.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, ok := m.game.ScreenToBoard(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	var events []core.PointerEvent
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		events = append(events, core.PointerEvent{Kind: core.PointerDown, X: p.X, Y: p.Y})
	case tea.MouseActionMotion:
		events = append(events, core.PointerEvent{Kind: core.PointerMove, X: p.X, Y: p.Y})
	case tea.MouseActionRelease:
		events = append(events,
			core.PointerEvent{Kind: core.PointerMove, X: p.X, Y: p.Y},
			core.PointerEvent{Kind: core.PointerUp, X: p.X, Y: p.Y},
		)
	}
	for _, ev := range events {
		core.Dispatch(m.game, ev)
	}
	return m, nil
}

// handleResize processes window resize events. The round keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := boardHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(dt)
	m.gameState = result.State

	if result.RoundOver {
		m.logger.Info("round over",
			"score", result.State.Score,
			"played", durafmt.Parse(m.game.Played()).LimitFirstN(2).String(),
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Render(m.screen) + "\n" + m.statusBar() + "\n" + m.help.View(m.keys)
}

// statusBar shows the score, the time left and any notice.
func (m Model) statusBar() string {
	snap := m.game.Snapshot()
	secs := int(math.Round(snap.TimeLeft.Seconds()))

	parts := []string{
		scoreStyle.Render(fmt.Sprintf("Kisses: %d", snap.Score)),
		m.timer.ViewAs(snap.TimeFraction()),
		timerStyle.Render(fmt.Sprintf("Timer: %ds", secs)),
	}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, joinSpaced(parts)...)
}

func joinSpaced(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}

// Run starts the Bubble Tea program with a local model and stops the game
// when the program exits.
func Run(game *fruitbox.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, nil, logger)
	if !game.HasMusic() {
		model = model.WithKeys(DefaultKeyMap().WithoutMusic())
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drags report motion while a button is held
	)

	_, err := p.Run()
	game.Stop()
	return err
}
