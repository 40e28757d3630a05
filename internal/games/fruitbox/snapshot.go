package fruitbox

import (
	"slices"
	"time"
)

// Snapshot is a read-only copy of everything a host needs to draw a frame.
// It shares nothing with the game.
type Snapshot struct {
	Frame     uint64
	Mode      Mode
	Score     int
	TimeLeft  time.Duration
	TimeTotal time.Duration

	BoardW, BoardH float64
	Params         GridParams
	Tokens         []Token

	Selection     Selection
	SelectionRect Rect // Zero unless Selection.Active

	Ejected []Ejected
	Toasts  []Toast

	Button    Button // Visible button, if HasButton
	HasButton bool

	Light   bool
	Stopped bool
}

// TimeFraction returns the share of the round clock still left.
func (s Snapshot) TimeFraction() float64 {
	if s.TimeTotal <= 0 {
		return 0
	}
	return float64(s.TimeLeft) / float64(s.TimeTotal)
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:     g.frame,
		Mode:      g.modes.Mode(),
		Score:     g.score,
		TimeLeft:  g.clock.Left(),
		TimeTotal: g.clock.Total(),
		BoardW:    g.cfg.Board.Width,
		BoardH:    g.cfg.Board.Height,
		Params:    g.params,
		Tokens:    slices.Clone(g.board.Tokens()),
		Selection: g.selector.Selection(),
		Ejected:   slices.Clone(g.effects.Ejected()),
		Toasts:    slices.Clone(g.effects.Toasts()),
		Light:     g.light,
		Stopped:   g.stopped,
	}
	if g.selector.Dragging() {
		s.SelectionRect = g.selector.Rect()
	}
	s.Button, s.HasButton = g.modes.VisibleButton()
	return s
}
