package fruitbox

import (
	"math"

	"github.com/vovakirdan/fruitbox/internal/core"
)

// Terminal cells per grid cell are capped so large terminals keep a
// compact board.
const (
	maxCellCols = 6
	maxCellRows = 3
	minCellCols = 2
	minCellRows = 1
)

// Layout maps board units onto terminal cells. Every grid cell gets a
// whole number of terminal cells; the margin scales with it.
type Layout struct {
	ScreenW, ScreenH   int
	CellCols, CellRows int       // Terminal cells per grid cell
	Grid               core.Rect // Grid area in terminal cells
	TooSmall           bool

	sx, sy float64 // Terminal cells per board unit
	ox, oy float64 // Terminal position of the board origin
}

// MinScreenSize returns the smallest terminal that fits the board: the
// grid, a border on each side and the timer column with its gap.
func MinScreenSize(p GridParams) (w, h int) {
	return p.Cols*minCellCols + 4, p.Rows*minCellRows + 2
}

// NewLayout fits the grid into a w x h terminal, centered.
func NewLayout(w, h int, p GridParams) Layout {
	l := Layout{ScreenW: w, ScreenH: h}
	if p.Cols <= 0 || p.Rows <= 0 {
		l.TooSmall = true
		return l
	}
	l.CellCols = min(maxCellCols, (w-4)/p.Cols)
	l.CellRows = min(maxCellRows, (h-2)/p.Rows)
	if l.CellCols < minCellCols || l.CellRows < minCellRows {
		l.TooSmall = true
		return l
	}

	gw, gh := p.Cols*l.CellCols, p.Rows*l.CellRows
	gx := (w-gw-4)/2 + 1
	gy := (h-gh-2)/2 + 1
	l.Grid = core.NewRect(gx, gy, gw, gh)

	l.sx = float64(l.CellCols) / p.CellW
	l.sy = float64(l.CellRows) / p.CellH
	l.ox = float64(gx) - p.Margin*l.sx
	l.oy = float64(gy) - p.Margin*l.sy
	return l
}

// ToScreen maps a board point to fractional terminal coordinates.
func (l Layout) ToScreen(x, y float64) (col, row float64) {
	return l.ox + x*l.sx, l.oy + y*l.sy
}

// ToBoard maps the center of a terminal cell to board units.
func (l Layout) ToBoard(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5 - l.ox) / l.sx,
		Y: (float64(row) + 0.5 - l.oy) / l.sy,
	}
}

// Scale returns terminal cells per board unit on each axis.
func (l Layout) Scale() (sx, sy float64) {
	return l.sx, l.sy
}

// RectToScreen maps a board rectangle to the terminal cells it covers.
func (l Layout) RectToScreen(r Rect) core.Rect {
	x1, y1 := l.ToScreen(r.X1, r.Y1)
	x2, y2 := l.ToScreen(r.X2, r.Y2)
	return core.RectFromEdges(
		int(math.Round(x1)), int(math.Round(y1)),
		int(math.Round(x2)), int(math.Round(y2)),
	)
}

// ButtonArea returns the cells a button is drawn on. It is widened to fit
// the label with a space on each side and is at least one row tall.
func (l Layout) ButtonArea(b Button) core.Rect {
	area := l.RectToScreen(b.Rect())
	if extra := len([]rune(b.Label)) + 2 - area.W; extra > 0 {
		area.X -= (extra + 1) / 2
		area.W += extra
	}
	area.H = max(area.H, 1)
	return area
}

// Border returns the frame around the grid.
func (l Layout) Border() core.Rect {
	return core.NewRect(l.Grid.X-1, l.Grid.Y-1, l.Grid.W+2, l.Grid.H+2)
}

// TimerColumn returns the column of the timer bar, one gap right of the border.
func (l Layout) TimerColumn() int {
	return l.Grid.Right() + 2
}
