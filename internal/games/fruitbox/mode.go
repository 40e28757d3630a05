package fruitbox

// Mode is the screen the game is on.
type Mode int

const (
	ModeStart Mode = iota // Title screen, waiting for Play
	ModePlay              // Round in progress
	ModeOver              // Time is up, waiting for Play again
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlay:
		return "play"
	case ModeOver:
		return "over"
	default:
		return "unknown"
	}
}

// Button is a clickable hit target in board units.
type Button struct {
	Label      string
	X, Y, W, H float64
}

// Rect returns the button bounds.
func (b Button) Rect() Rect {
	return Rect{X1: b.X, Y1: b.Y, X2: b.X + b.W, Y2: b.Y + b.H}
}

// Hit reports whether p is on the button, edges included.
func (b Button) Hit(p Point) bool {
	return b.Rect().ContainsInclusive(p)
}

// Button geometry relative to the board size.
const (
	buttonW = 120
	buttonH = 40
)

// PlayButton is the start screen button.
func PlayButton(boardW, boardH float64) Button {
	return Button{Label: "Play", X: boardW/2 - buttonW/2, Y: boardH / 2, W: buttonW, H: buttonH}
}

// PlayAgainButton is the over screen button.
func PlayAgainButton(boardW, boardH float64) Button {
	return Button{Label: "Play again", X: boardW/2 - buttonW/2, Y: boardH/2 + 20, W: buttonW, H: buttonH}
}

// Controller owns the start -> play -> over state machine.
type Controller struct {
	mode      Mode
	play      Button
	playAgain Button
}

// NewController starts on the title screen.
func NewController(boardW, boardH float64) *Controller {
	return &Controller{
		mode:      ModeStart,
		play:      PlayButton(boardW, boardH),
		playAgain: PlayAgainButton(boardW, boardH),
	}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// VisibleButton returns the button shown on the current screen.
// There is none during play.
func (c *Controller) VisibleButton() (Button, bool) {
	switch c.mode {
	case ModeStart:
		return c.play, true
	case ModeOver:
		return c.playAgain, true
	default:
		return Button{}, false
	}
}

// Press handles a pointer-down outside of play. It reports whether the
// visible button was hit, in which case the mode is now play and the caller
// must reset the round.
func (c *Controller) Press(p Point) bool {
	btn, ok := c.VisibleButton()
	if !ok || !btn.Hit(p) {
		return false
	}
	c.mode = ModePlay
	return true
}

// Expire moves play to over. It reports false, and does nothing, in any
// other mode.
func (c *Controller) Expire() bool {
	if c.mode != ModePlay {
		return false
	}
	c.mode = ModeOver
	return true
}

// Restart returns to the title screen from any mode.
func (c *Controller) Restart() {
	c.mode = ModeStart
}
