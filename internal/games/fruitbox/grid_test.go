package fruitbox

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/fruitbox/internal/config"
)

func testParams() GridParams {
	return ParamsFrom(config.DefaultFruitBoxConfig().Board)
}

func newTestGrid(seed int64) *Grid {
	cfg := config.DefaultFruitBoxConfig()
	return NewGrid(ParamsFrom(cfg.Board), cfg.Board.Radius(), rand.New(rand.NewSource(seed)))
}

func TestGenerateFillsEveryCell(t *testing.T) {
	p := testParams()
	board := newTestGrid(1).Generate()

	if got, want := board.Len(), p.Cols*p.Rows; got != want {
		t.Fatalf("board has %d tokens, want %d", got, want)
	}

	seen := make(map[TokenID]bool)
	for i, tok := range board.Tokens() {
		if tok.Value < 1 || tok.Value > 9 {
			t.Errorf("token %d value = %d, want 1..9", tok.ID, tok.Value)
		}
		if seen[tok.ID] {
			t.Errorf("duplicate token id %d", tok.ID)
		}
		seen[tok.ID] = true

		col, row := i%p.Cols, i/p.Cols
		x, y := p.CellCenter(col, row)
		if tok.X != x || tok.Y != y {
			t.Errorf("token %d at (%g, %g), want cell (%d, %d) center (%g, %g)", tok.ID, tok.X, tok.Y, col, row, x, y)
		}
	}
}

func TestGenerateUsesAllValues(t *testing.T) {
	board := newTestGrid(7).Generate()
	counts := make(map[int]int)
	for _, tok := range board.Tokens() {
		counts[tok.Value]++
	}
	// 180 draws from 9 values: every value shows up.
	for v := 1; v <= 9; v++ {
		if counts[v] == 0 {
			t.Errorf("value %d never generated", v)
		}
	}
}

func TestGenerateNeverReusesIDs(t *testing.T) {
	g := newTestGrid(1)
	first := IDsOf(g.Generate().Tokens())
	for _, tok := range g.Generate().Tokens() {
		if _, dup := first[tok.ID]; dup {
			t.Fatalf("id %d reused across boards", tok.ID)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestGrid(99).Generate()
	b := newTestGrid(99).Generate()
	for i := range a.Tokens() {
		if a.Tokens()[i] != b.Tokens()[i] {
			t.Fatalf("token %d differs: %+v vs %+v", i, a.Tokens()[i], b.Tokens()[i])
		}
	}
}

func TestBoardRemove(t *testing.T) {
	board := newTestGrid(3).Generate()
	victims := board.Tokens()[:5]
	ids := IDsOf(victims)

	after := board.Remove(ids)

	if got, want := after.Len(), board.Len()-5; got != want {
		t.Errorf("after remove: %d tokens, want %d", got, want)
	}
	if board.Len() != 180 {
		t.Errorf("original board changed: %d tokens", board.Len())
	}
	full := Rect{X1: -1, Y1: -1, X2: 1000, Y2: 1000}
	for _, tok := range TokensWithin(after, full) {
		if _, gone := ids[tok.ID]; gone {
			t.Errorf("TokensWithin returned removed token %d", tok.ID)
		}
	}
}

func TestBoardRemoveEmptySet(t *testing.T) {
	board := newTestGrid(3).Generate()
	after := board.Remove(IDSet{})
	if after.Len() != board.Len() {
		t.Errorf("empty remove changed the board: %d -> %d", board.Len(), after.Len())
	}
}

func TestSum(t *testing.T) {
	tokens := []Token{{Value: 2}, {Value: 3}, {Value: 4}, {Value: 1}}
	if got := Sum(tokens); got != TargetSum {
		t.Errorf("Sum = %d, want %d", got, TargetSum)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %d, want 0", got)
	}
}
