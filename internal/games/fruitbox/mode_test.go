package fruitbox

import "testing"

func TestButtonHitInclusive(t *testing.T) {
	b := PlayButton(740, 520) // (310, 260) 120x40

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{310, 260}, true}, // top-left corner
		{Point{430, 300}, true}, // bottom-right corner
		{Point{370, 280}, true},
		{Point{309.9, 280}, false},
		{Point{430.1, 280}, false},
		{Point{370, 300.1}, false},
	}
	for _, tt := range tests {
		if got := b.Hit(tt.p); got != tt.want {
			t.Errorf("Hit(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestControllerTransitions(t *testing.T) {
	c := NewController(740, 520)
	play := PlayButton(740, 520)
	again := PlayAgainButton(740, 520)

	if c.Mode() != ModeStart {
		t.Fatalf("initial mode = %v, want start", c.Mode())
	}
	if c.Expire() {
		t.Error("Expire fired on the start screen")
	}

	// Inside Play again only: not the visible button on the start screen.
	if c.Press(Point{370, 315}) {
		t.Error("start screen accepted a press on the hidden Play again button")
	}
	if !c.Press(Point{play.X + 1, play.Y + 1}) {
		t.Fatal("Play not pressed")
	}
	if c.Mode() != ModePlay {
		t.Fatalf("mode = %v, want play", c.Mode())
	}
	if _, ok := c.VisibleButton(); ok {
		t.Error("button visible during play")
	}
	if c.Press(Point{play.X + 1, play.Y + 1}) {
		t.Error("press accepted during play")
	}

	if !c.Expire() {
		t.Fatal("Expire did not end play")
	}
	if c.Expire() {
		t.Error("Expire fired twice")
	}
	if btn, _ := c.VisibleButton(); btn.Label != "Play again" {
		t.Errorf("over screen button = %q, want Play again", btn.Label)
	}
	if !c.Press(Point{again.X + again.W, again.Y + again.H}) {
		t.Fatal("Play again not pressed")
	}
	if c.Mode() != ModePlay {
		t.Errorf("mode = %v, want play", c.Mode())
	}

	c.Restart()
	if c.Mode() != ModeStart {
		t.Errorf("after Restart: mode = %v, want start", c.Mode())
	}
}
