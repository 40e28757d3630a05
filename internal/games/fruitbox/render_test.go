package fruitbox

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/fruitbox/internal/config"
	"github.com/vovakirdan/fruitbox/internal/core"
)

func render(g *Game) *core.Screen {
	s := core.NewScreen(80, 24)
	g.Render(s)
	return s
}

func TestRenderStartScreen(t *testing.T) {
	g := newTestGame(t)
	out := render(g).String()
	for _, want := range []string{"Fruit Box", "Play"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOverScreen(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)
	g.Step(g.clock.Total())

	out := render(g).String()
	for _, want := range []string{"Time up! Kisses: 0", "Play again", "☺"} {
		if !strings.Contains(out, want) {
			t.Errorf("over screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOverScreenGallery(t *testing.T) {
	g := newTestGame(t)
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	g.SetGallery([]image.Image{img})
	startRound(t, g)
	g.Step(g.clock.Total())

	out := render(g).String()
	if strings.Contains(out, "☺") {
		t.Error("placeholder drawn with a gallery image set")
	}
}

func TestRenderTokenValues(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)
	s := render(g)
	l := NewLayout(80, 24, g.params)

	for _, tok := range g.Board().Tokens() {
		cx, cy := l.ToScreen(tok.X, tok.Y)
		if got, want := s.Get(int(cx), int(cy)), rune('0'+tok.Value); got != want {
			t.Fatalf("token %d drawn as %q, want %q", tok.ID, got, want)
		}
	}
	if strings.Contains(s.String(), "Play") {
		t.Error("overlay drawn during play")
	}
}

func TestRenderSelection(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)
	x1, y1 := g.params.CellCenter(1, 1)
	x2, y2 := g.params.CellCenter(3, 2)
	g.PointerDown(x1, y1)
	g.PointerMove(x2, y2)

	s := render(g)
	area := NewLayout(80, 24, g.params).RectToScreen(g.selector.Rect())
	if got := s.Get(area.X, area.Y); got != '┌' {
		t.Errorf("top-left corner = %q, want ┌", got)
	}
	if got := s.Get(area.Right()-1, area.Bottom()-1); got != '┘' {
		t.Errorf("bottom-right corner = %q, want ┘", got)
	}
}

func TestRenderTimerBar(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)
	l := NewLayout(80, 24, g.params)
	x, top := l.TimerColumn(), l.Border().Y*2

	if got := render(g).Pixel(x, top); got != ColorTimerTop {
		t.Errorf("full bar top = %q, want %q", got, ColorTimerTop)
	}

	g.Step(g.clock.Total() / 2)
	if got := render(g).Pixel(x, top); got != ColorTimerTrack {
		t.Errorf("half bar top = %q, want track %q", got, ColorTimerTrack)
	}
}

func TestRenderThemes(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)

	if got := render(g).GetCell(0, 0).Bg; got != defaultTheme.BgFrom {
		t.Errorf("default background = %q, want %q", got, defaultTheme.BgFrom)
	}
	g.SetLight(true)
	if got := render(g).GetCell(0, 0).Bg; got != lightTheme.BgFrom {
		t.Errorf("light background = %q, want %q", got, lightTheme.BgFrom)
	}
}

func TestRenderEffects(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)
	for col, v := range []int{3, 7} {
		setValue(g, col, 4, v)
	}
	drag(g, 0, 4, 1, 4)
	g.Step(time.Millisecond)

	if out := render(g).String(); !strings.Contains(out, "+2 Kisses") {
		t.Errorf("toast not drawn:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(30, 8)
	g.Render(s)
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("missing size hint:\n%s", s.String())
	}
}

func TestInsideRounded(t *testing.T) {
	tests := []struct {
		u, v float64
		want bool
	}{
		{0.5, 0.5, true},
		{0.01, 0.01, false}, // cut corner
		{0.5, 0.0, true},    // straight edge
		{0.99, 0.99, false},
		{1.2, 0.5, false},
	}
	for _, tt := range tests {
		if got := insideRounded(tt.u, tt.v, 1.0/6); got != tt.want {
			t.Errorf("insideRounded(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

// buttonGame returns a game on the start screen, or on the over screen.
func buttonGame(t *testing.T, w, h int, over bool) *Game {
	t.Helper()
	g := New(config.DefaultFruitBoxConfig())
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: 1})
	if over {
		startRound(t, g)
		g.Step(g.cfg.Clock.Duration)
	}
	return g
}

func TestButtonHitMatchesDrawnCells(t *testing.T) {
	w, h := MinScreenSize(ParamsFrom(config.DefaultFruitBoxConfig().Board))

	for _, over := range []bool{false, true} {
		g := buttonGame(t, w, h, over)
		btn, ok := g.modes.VisibleButton()
		if !ok {
			t.Fatal("no visible button")
		}
		l := NewLayout(w, h, g.params)
		area := l.ButtonArea(btn)
		if area.W < len(btn.Label)+2 {
			t.Fatalf("%s: area %d cells wide, label needs %d", btn.Label, area.W, len(btn.Label)+2)
		}

		screen := core.NewScreen(w, h)
		g.Render(screen)

		for y := range h {
			for x := range w {
				drawn := area.Contains(x, y)
				if drawn && screen.GetCell(x, y).Bg != ColorButton {
					t.Errorf("%s: cell (%d, %d) inside the area is not drawn as button", btn.Label, x, y)
				}

				fresh := buttonGame(t, w, h, over)
				p, ok := fresh.ScreenToBoard(x, y)
				if !ok {
					t.Fatalf("%dx%d reported too small", w, h)
				}
				fresh.PointerDown(p.X, p.Y)
				if hit := fresh.Mode() == ModePlay; hit != drawn {
					t.Errorf("%s: cell (%d, %d) hit = %v, drawn = %v", btn.Label, x, y, hit, drawn)
				}
			}
		}
	}
}
