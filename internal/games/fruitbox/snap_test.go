package fruitbox

import "testing"

func TestSnapRect(t *testing.T) {
	p := testParams()
	span := func(c1, r1, c2, r2 int) Rect {
		x1, y1 := p.CellOrigin(c1, r1)
		x2, y2 := p.CellOrigin(c2+1, r2+1)
		return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
	}

	tests := []struct {
		name       string
		start, cur Point
		want       Rect
	}{
		{
			name:  "click snaps to one cell",
			start: Point{30, 30},
			cur:   Point{30, 30},
			want:  span(0, 0, 0, 0),
		},
		{
			name:  "drag down-right",
			start: Point{50, 50},
			cur:   Point{100, 100},
			want:  span(0, 0, 1, 1),
		},
		{
			name:  "drag up-left gives the same rectangle",
			start: Point{100, 100},
			cur:   Point{50, 50},
			want:  span(0, 0, 1, 1),
		},
		{
			name:  "points outside clamp to the edge cells",
			start: Point{-50, -50},
			cur:   Point{10000, 10000},
			want:  span(0, 0, p.Cols-1, p.Rows-1),
		},
		{
			name:  "margin clamps into the first cell",
			start: Point{5, 5},
			cur:   Point{5, 5},
			want:  span(0, 0, 0, 0),
		},
		{
			name:  "single row",
			start: Point{p.Margin + 1, p.Margin + 1},
			cur:   Point{p.Margin + p.CellW*3.5, p.Margin + 1},
			want:  span(0, 0, 3, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnapRect(tt.start, tt.cur, p)
			if got != tt.want {
				t.Errorf("SnapRect(%v, %v) = %+v, want %+v", tt.start, tt.cur, got, tt.want)
			}
			if again := SnapRect(tt.start, tt.cur, p); again != got {
				t.Errorf("SnapRect not stable: %+v then %+v", got, again)
			}
		})
	}
}

func TestTokensWithinIsStrict(t *testing.T) {
	board := Board{tokens: []Token{
		{ID: 1, X: 10, Y: 10, Value: 1},     // inside
		{ID: 2, X: 0, Y: 10, Value: 2},      // on left edge
		{ID: 3, X: 20, Y: 10, Value: 3},     // on right edge
		{ID: 4, X: 10, Y: 0, Value: 4},      // on top edge
		{ID: 5, X: 10, Y: 20, Value: 5},     // on bottom edge
		{ID: 6, X: 30, Y: 30, Value: 6},     // outside
		{ID: 7, X: 19.9, Y: 0.1, Value: 7}, // inside, near a corner
	}}
	r := Rect{X1: 0, Y1: 0, X2: 20, Y2: 20}

	got := TokensWithin(board, r)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 7 {
		t.Errorf("TokensWithin = %+v, want ids [1 7]", got)
	}
}

func TestTokensWithinSnappedCell(t *testing.T) {
	board := newTestGrid(5).Generate()
	p := testParams()
	x, y := p.CellCenter(4, 3)

	got := TokensWithin(board, SnapRect(Point{x, y}, Point{x, y}, p))
	if len(got) != 1 {
		t.Fatalf("single cell selection holds %d tokens, want 1", len(got))
	}
	if got[0].X != x || got[0].Y != y {
		t.Errorf("selected token at (%g, %g), want (%g, %g)", got[0].X, got[0].Y, x, y)
	}
}
