package fruitbox

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/fruitbox/internal/config"
)

// Ejected is a cleared token flying off the board.
type Ejected struct {
	X, Y   float64
	R      float64
	VX, VY float64
	Age    int
	MaxAge int
	Value  int
	pop    float64
}

// Progress returns age/maxAge.
func (e Ejected) Progress() float64 {
	return float64(e.Age) / float64(e.MaxAge)
}

// Alpha fades linearly from 1 to 0 over the lifetime.
func (e Ejected) Alpha() float64 {
	return math.Max(0, 1-e.Progress())
}

// Scale swells the token and shrinks it back as it ages.
func (e Ejected) Scale() float64 {
	return 1 + e.pop*math.Sin(math.Min(1, e.Progress())*math.Pi)
}

// Toast is a floating score message.
type Toast struct {
	X       float64
	AnchorY float64
	Text    string
	Age     int
	MaxAge  int
	rise    float64
}

// Y returns the current height: the toast drifts up from its anchor.
func (t Toast) Y() float64 {
	return t.AnchorY - float64(t.Age)*t.rise
}

// Progress returns age/maxAge.
func (t Toast) Progress() float64 {
	return float64(t.Age) / float64(t.MaxAge)
}

// Alpha fades linearly from 1 to 0 over the lifetime.
func (t Toast) Alpha() float64 {
	return math.Max(0, 1-t.Progress())
}

// Muted reports whether the toast is past half its life and drawn in the
// muted colour.
func (t Toast) Muted() bool {
	return t.Progress() > 0.5
}

// ToastText formats the score message for a match of n tokens.
func ToastText(n int) string {
	return fmt.Sprintf("+%d Kisses", n)
}

// Effects owns ejected tokens and toasts. Both lists stay in insertion
// order and entries never interact.
type Effects struct {
	cfg     config.EffectsConfig
	ejected []Ejected
	toasts  []Toast
}

// NewEffects creates an empty effects engine.
func NewEffects(cfg config.EffectsConfig) *Effects {
	return &Effects{cfg: cfg}
}

// Eject launches a cleared token upward with a little horizontal jitter.
func (e *Effects) Eject(tok Token, rng *rand.Rand) {
	c := e.cfg.Ejected
	e.ejected = append(e.ejected, Ejected{
		X:      tok.X,
		Y:      tok.Y,
		R:      tok.R,
		VX:     (rng.Float64() - 0.5) * c.Jitter,
		VY:     -c.LaunchSpeed - rng.Float64()*c.LaunchSpread,
		MaxAge: c.MaxAge,
		Value:  tok.Value,
		pop:    c.PopAmplitude,
	})
}

// AddToast anchors a score message at (x, y).
func (e *Effects) AddToast(x, y float64, text string) {
	e.toasts = append(e.toasts, Toast{
		X:       x,
		AnchorY: y,
		Text:    text,
		MaxAge:  e.cfg.Toast.MaxAge,
		rise:    e.cfg.Toast.Rise,
	})
}

// Advance ages every effect by one frame and drops the expired ones.
func (e *Effects) Advance() {
	c := e.cfg.Ejected
	flying := e.ejected[:0]
	for _, f := range e.ejected {
		f.VY += c.Gravity
		f.VX *= c.Drag
		f.X += f.VX
		f.Y += f.VY
		f.Age++
		if f.Age < f.MaxAge {
			flying = append(flying, f)
		}
	}
	e.ejected = flying

	live := e.toasts[:0]
	for _, t := range e.toasts {
		t.Age++
		if t.Age < t.MaxAge {
			live = append(live, t)
		}
	}
	e.toasts = live
}

// Ejected returns the live ejected tokens. Callers must not modify the slice.
func (e *Effects) Ejected() []Ejected {
	return e.ejected
}

// Toasts returns the live toasts. Callers must not modify the slice.
func (e *Effects) Toasts() []Toast {
	return e.toasts
}

// Len returns the total number of live effects.
func (e *Effects) Len() int {
	return len(e.ejected) + len(e.toasts)
}

// Clear drops every effect.
func (e *Effects) Clear() {
	e.ejected = nil
	e.toasts = nil
}
