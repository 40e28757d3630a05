// Package gui hosts the game in a desktop window through Ebitengine.
package gui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hako/durafmt"

	"github.com/vovakirdan/fruitbox/internal/core"
	"github.com/vovakirdan/fruitbox/internal/games/fruitbox"
)

// Options configures the window.
type Options struct {
	Title string
	Scale float64 // Initial window size relative to the board
	TPS   int
}

// DefaultOptions returns a 60 TPS window at the board's own size.
func DefaultOptions() Options {
	return Options{Title: "Fruit Box", Scale: 1, TPS: 60}
}

// Host adapts a fruitbox.Game to ebiten.Game.
type Host struct {
	game   *fruitbox.Game
	logger *log.Logger
	keys   map[ebiten.Key]core.Action

	last time.Time

	// Active pointer
	touchID  ebiten.TouchID
	touching bool
	dragging bool
	lastX    float64
	lastY    float64
	touchIDs []ebiten.TouchID

	textures *textures
}

// NewHost wraps game. A nil logger discards output.
func NewHost(game *fruitbox.Game, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := map[ebiten.Key]core.Action{
		ebiten.KeyR:      core.ActionReset,
		ebiten.KeyL:      core.ActionToggleLight,
		ebiten.KeyQ:      core.ActionQuit,
		ebiten.KeyEscape: core.ActionQuit,
	}
	if game.HasMusic() {
		keys[ebiten.KeyM] = core.ActionToggleMusic
	}
	return &Host{
		game:     game,
		logger:   logger,
		keys:     keys,
		textures: newTextures(),
	}
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	now := time.Now()
	dt := time.Second / time.Duration(ebiten.TPS())
	if !h.last.IsZero() {
		dt = now.Sub(h.last)
	}
	h.last = now

	for k, action := range h.keys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if h.handleAction(action) {
			h.game.Stop()
			return ebiten.Termination
		}
	}

	h.handleTouches()
	if !h.touching {
		h.handleMouse()
	}

	res := h.game.Step(dt)
	if res.RoundOver {
		h.logger.Info("round over",
			"score", res.State.Score,
			"played", durafmt.Parse(h.game.Played()).LimitFirstN(2).String())
	}
	return nil
}

// handleAction applies a key action and reports whether the host should quit.
func (h *Host) handleAction(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		return true
	case core.ActionReset:
		h.game.RequestReset()
	case core.ActionToggleLight:
		h.game.SetLight(!h.game.Light())
	case core.ActionToggleMusic:
		if err := h.game.ToggleMusic(); err != nil {
			h.logger.Warn("music toggle failed", "err", err)
		}
	}
	return false
}

// handleTouches tracks the first finger down; others are ignored until it
// lifts. TouchPosition reports zero after release, so the last seen
// position ends the drag.
func (h *Host) handleTouches() {
	h.touchIDs = inpututil.AppendJustPressedTouchIDs(h.touchIDs[:0])
	if !h.touching && len(h.touchIDs) > 0 {
		h.touchID = h.touchIDs[0]
		h.touching = true
		x, y := ebiten.TouchPosition(h.touchID)
		h.pointer(core.PointerDown, float64(x), float64(y))
		return
	}
	if !h.touching {
		return
	}
	if inpututil.IsTouchJustReleased(h.touchID) {
		h.pointer(core.PointerUp, h.lastX, h.lastY)
		h.touching = false
		return
	}
	x, y := ebiten.TouchPosition(h.touchID)
	h.moveTo(float64(x), float64(y))
}

func (h *Host) handleMouse() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		h.dragging = true
		h.pointer(core.PointerDown, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		h.moveTo(x, y)
		h.dragging = false
		h.pointer(core.PointerUp, x, y)
	case h.dragging:
		h.moveTo(x, y)
	}
}

// moveTo reports a move only when the pointer actually moved.
func (h *Host) moveTo(x, y float64) {
	if x == h.lastX && y == h.lastY {
		return
	}
	h.pointer(core.PointerMove, x, y)
}

func (h *Host) pointer(kind core.PointerKind, x, y float64) {
	h.lastX, h.lastY = x, y
	core.Dispatch(h.game, core.PointerEvent{Kind: kind, X: x, Y: y})
}

// Layout implements ebiten.Game. The logical screen is the board, so
// cursor and touch positions arrive in board units.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := h.game.Config().Board
	return int(cfg.Width), int(cfg.Height)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *fruitbox.Game, opts Options, logger *log.Logger) error {
	host := NewHost(game, logger)
	cfg := game.Config().Board

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(cfg.Width*scale), int(cfg.Height*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	err := ebiten.RunGame(host)
	game.Stop()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
