package fruitbox

import (
	"testing"

	"github.com/vovakirdan/fruitbox/internal/core"
)

func TestNewLayout(t *testing.T) {
	p := testParams()

	tests := []struct {
		name         string
		w, h         int
		tooSmall     bool
		cellCols     int
		cellRows     int
		wantGridRect core.Rect
	}{
		{"classic terminal", 80, 24, false, 4, 2, core.NewRect(3, 2, 72, 20)},
		{"large terminal caps cell size", 300, 100, false, 6, 3, core.NewRect((300-108-4)/2+1, (100-30-2)/2+1, 108, 30)},
		{"minimum", 40, 12, false, 2, 1, core.NewRect(1, 1, 36, 10)},
		{"one column short", 39, 12, true, 0, 0, core.Rect{}},
		{"one row short", 40, 11, true, 0, 0, core.Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.w, tt.h, p)
			if l.TooSmall != tt.tooSmall {
				t.Fatalf("TooSmall = %v, want %v", l.TooSmall, tt.tooSmall)
			}
			if tt.tooSmall {
				return
			}
			if l.CellCols != tt.cellCols || l.CellRows != tt.cellRows {
				t.Errorf("cell size = %dx%d, want %dx%d", l.CellCols, l.CellRows, tt.cellCols, tt.cellRows)
			}
			if l.Grid != tt.wantGridRect {
				t.Errorf("Grid = %+v, want %+v", l.Grid, tt.wantGridRect)
			}
			if l.TimerColumn() >= tt.w {
				t.Errorf("timer column %d off a %d wide screen", l.TimerColumn(), tt.w)
			}
		})
	}
}

func TestMinScreenSize(t *testing.T) {
	p := testParams()
	w, h := MinScreenSize(p)
	if NewLayout(w, h, p).TooSmall {
		t.Errorf("MinScreenSize %dx%d is too small", w, h)
	}
	if !NewLayout(w-1, h, p).TooSmall || !NewLayout(w, h-1, p).TooSmall {
		t.Errorf("MinScreenSize %dx%d is not minimal", w, h)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	p := testParams()
	for _, size := range [][2]int{{80, 24}, {40, 12}, {200, 60}} {
		l := NewLayout(size[0], size[1], p)
		for y := l.Grid.Y; y < l.Grid.Bottom(); y++ {
			for x := l.Grid.X; x < l.Grid.Right(); x++ {
				wantCol := (x - l.Grid.X) / l.CellCols
				wantRow := (y - l.Grid.Y) / l.CellRows
				col, row := p.Cell(l.ToBoard(x, y))
				if col != wantCol || row != wantRow {
					t.Fatalf("%dx%d: terminal (%d, %d) -> cell (%d, %d), want (%d, %d)",
						size[0], size[1], x, y, col, row, wantCol, wantRow)
				}
			}
		}
	}
}

func TestRectToScreenAlignsWithGrid(t *testing.T) {
	p := testParams()
	l := NewLayout(80, 24, p)
	x1, y1 := p.CellCenter(2, 1)
	x2, y2 := p.CellCenter(5, 3)

	got := l.RectToScreen(SnapRect(Point{x1, y1}, Point{x2, y2}, p))
	want := core.NewRect(l.Grid.X+2*l.CellCols, l.Grid.Y+1*l.CellRows, 4*l.CellCols, 3*l.CellRows)
	if got != want {
		t.Errorf("RectToScreen = %+v, want %+v", got, want)
	}
}

func TestButtonArea(t *testing.T) {
	p := testParams()
	again := PlayAgainButton(740, 520)

	wide := NewLayout(80, 24, p)
	if got, want := wide.ButtonArea(again), wide.RectToScreen(again.Rect()); got != want {
		t.Errorf("80x24: ButtonArea = %+v, want the plain mapping %+v", got, want)
	}

	narrow := NewLayout(40, 12, p)
	plain := narrow.RectToScreen(again.Rect())
	got := narrow.ButtonArea(again)
	if got.W != len("Play again")+2 {
		t.Errorf("40x12: width = %d, want %d", got.W, len("Play again")+2)
	}
	if got.H < 1 {
		t.Errorf("40x12: height = %d, want at least 1", got.H)
	}
	if got.X > plain.X || got.Right() < plain.Right() {
		t.Errorf("40x12: %+v does not cover the mapped rect %+v", got, plain)
	}
}
