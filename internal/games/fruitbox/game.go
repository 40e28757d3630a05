// Package fruitbox implements the "add to 10" puzzle: drag a rectangle over
// numbered tokens and clear them when they sum to exactly ten before the
// clock runs out.
package fruitbox

import (
	"image"
	"math/rand"
	"time"

	"github.com/vovakirdan/fruitbox/internal/config"
	"github.com/vovakirdan/fruitbox/internal/core"
)

// Music is the background music handle. The game only ever toggles it.
type Music interface {
	Toggle() error
}

// Game is the single authoritative game state. Hosts feed it pointer
// events and frames on one goroutine and read it back for drawing.
type Game struct {
	cfg    config.FruitBoxConfig
	params GridParams
	rng    *rand.Rand

	grid     *Grid
	board    Board
	selector *Selector
	clock    *Clock
	modes    *Controller
	effects  *Effects

	score   int
	frame   uint64
	stopped bool

	// Screen dimensions in terminal cells
	screenW int
	screenH int

	sprite  image.Image
	gallery []image.Image
	music   Music
	light   bool
}

// New creates a game on the start screen with a fresh board.
func New(cfg config.FruitBoxConfig) *Game {
	params := ParamsFrom(cfg.Board)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Game{
		cfg:      cfg,
		params:   params,
		rng:      rng,
		grid:     NewGrid(params, cfg.Board.Radius(), rng),
		selector: NewSelector(params),
		clock:    NewClock(cfg.Clock.Duration),
		modes:    NewController(cfg.Board.Width, cfg.Board.Height),
		effects:  NewEffects(cfg.Effects),
	}
	g.board = g.grid.Generate()
	return g
}

// Reset re-seeds the board generator, stores the screen size and returns
// to the start screen with a fresh board, score and clock.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.stopped {
		return
	}
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.grid.rng = g.rng
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.frame = 0
	g.effects.Clear()
	g.restart()
}

// RequestReset returns to the start screen with a fresh board, score and
// clock. It may be called in any mode.
func (g *Game) RequestReset() {
	if g.stopped {
		return
	}
	g.restart()
}

func (g *Game) restart() {
	g.modes.Restart()
	g.newRound()
}

// newRound regenerates the board and refills the clock. Any in-flight drag
// belongs to the previous round and is dropped.
func (g *Game) newRound() {
	g.selector.Cancel()
	g.board = g.grid.Generate()
	g.score = 0
	g.clock.Reset()
}

// Resize records a new terminal size without touching game state.
func (g *Game) Resize(w, h int) {
	if g.stopped {
		return
	}
	g.screenW = w
	g.screenH = h
}

// PointerDown starts a drag during play. On the start and over screens it
// presses the visible button instead, which starts a new round when hit.
func (g *Game) PointerDown(x, y float64) {
	if g.stopped {
		return
	}
	p := Point{X: x, Y: y}
	if g.modes.Mode() != ModePlay {
		if g.modes.Press(p) {
			g.newRound()
		}
		return
	}
	g.selector.Begin(p)
}

// PointerMove updates the live selection.
func (g *Game) PointerMove(x, y float64) {
	if g.stopped || g.modes.Mode() != ModePlay {
		return
	}
	g.selector.Move(Point{X: x, Y: y}, g.board)
}

// PointerUp ends the drag at the last reported move; the release position
// itself is not used. Hosts report a move first when the pointer moved.
func (g *Game) PointerUp(x, y float64) {
	if g.stopped || g.modes.Mode() != ModePlay {
		return
	}
	m, ok := g.selector.End(g.board)
	if !ok {
		return
	}
	g.apply(m)
}

// apply clears a successful match: every token is ejected, the board loses
// them in one step, the score grows by the count and a toast is spawned.
func (g *Game) apply(m Match) {
	for _, tok := range m.Tokens {
		g.effects.Eject(tok, g.rng)
	}
	g.board = g.board.Remove(IDsOf(m.Tokens))
	g.score += m.Count()
	c := m.Rect.Center()
	g.effects.AddToast(c.X, c.Y, ToastText(m.Count()))
}

// Step advances one frame. The clock only runs during play; effects age in
// every mode.
func (g *Game) Step(dt time.Duration) core.StepResult {
	if g.stopped {
		return core.StepResult{State: g.State()}
	}
	g.frame++

	roundOver := false
	if g.modes.Mode() == ModePlay && g.clock.Advance(dt) {
		roundOver = g.modes.Expire()
		g.selector.Cancel()
	}
	g.effects.Advance()

	return core.StepResult{State: g.State(), RoundOver: roundOver}
}

// State returns the summary hosts need for their status bar.
func (g *Game) State() core.GameState {
	mode := g.modes.Mode()
	return core.GameState{
		Score:    g.score,
		GameOver: mode == ModeOver,
		Paused:   mode == ModeStart,
	}
}

// Stop freezes the game. No later call changes its state.
func (g *Game) Stop() {
	g.stopped = true
}

// Stopped reports whether Stop has been called.
func (g *Game) Stopped() bool {
	return g.stopped
}

// Mode returns the current screen.
func (g *Game) Mode() Mode {
	return g.modes.Mode()
}

// Score returns the number of tokens cleared this round.
func (g *Game) Score() int {
	return g.score
}

// TimeLeft returns the remaining round time.
func (g *Game) TimeLeft() time.Duration {
	return g.clock.Left()
}

// Played returns how much of the round clock has been used.
func (g *Game) Played() time.Duration {
	return g.clock.Elapsed()
}

// Board returns the live tokens.
func (g *Game) Board() Board {
	return g.board
}

// Params returns the grid geometry.
func (g *Game) Params() GridParams {
	return g.params
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FruitBoxConfig {
	return g.cfg
}

// SetSprite sets the image drawn inside every token. Nil restores the
// procedural look.
func (g *Game) SetSprite(img image.Image) {
	if g.stopped {
		return
	}
	g.sprite = img
}

// Sprite returns the token image, or nil.
func (g *Game) Sprite() image.Image {
	return g.sprite
}

// SetGallery sets the images for the over screen. Only the first is shown.
func (g *Game) SetGallery(imgs []image.Image) {
	if g.stopped {
		return
	}
	g.gallery = imgs
}

// GalleryImage returns the image shown on the over screen, or nil.
func (g *Game) GalleryImage() image.Image {
	if len(g.gallery) == 0 {
		return nil
	}
	return g.gallery[0]
}

// SetMusic attaches a background music handle. Nil disables music.
func (g *Game) SetMusic(m Music) {
	if g.stopped {
		return
	}
	g.music = m
}

// ToggleMusic plays or pauses the background music. Without a handle it
// does nothing.
func (g *Game) ToggleMusic() error {
	if g.stopped || g.music == nil {
		return nil
	}
	return g.music.Toggle()
}

// SetLight switches between the default and the light colour theme.
func (g *Game) SetLight(light bool) {
	if g.stopped {
		return
	}
	g.light = light
}

// Light reports whether the light theme is on.
func (g *Game) Light() bool {
	return g.light
}

// ScreenToBoard maps a terminal cell to board units using the last known
// screen size. It reports false when the terminal is too small to show
// the board.
//
// While a button is visible, the cells it is drawn on are its hit target:
// they map to the button center, and any other cell maps to a point the
// button does not contain.
func (g *Game) ScreenToBoard(col, row int) (Point, bool) {
	l := NewLayout(g.screenW, g.screenH, g.params)
	if l.TooSmall {
		return Point{}, false
	}
	p := l.ToBoard(col, row)
	btn, ok := g.modes.VisibleButton()
	if !ok {
		return p, true
	}
	if l.ButtonArea(btn).Contains(col, row) {
		return btn.Rect().Center(), true
	}
	if btn.Hit(p) {
		return Point{X: -1, Y: -1}, true
	}
	return p, true
}

// HasMusic reports whether a music handle is attached.
func (g *Game) HasMusic() bool {
	return g.music != nil
}
