package fruitbox

import (
	"github.com/vovakirdan/fruitbox/internal/config"
	"github.com/vovakirdan/fruitbox/internal/core"
)

// GridParams are the fixed grid dimensions in board-local units.
type GridParams struct {
	Margin       float64
	CellW, CellH float64
	Cols, Rows   int
}

// ParamsFrom derives grid parameters from the board configuration.
func ParamsFrom(b config.BoardConfig) GridParams {
	return GridParams{
		Margin: b.Margin,
		CellW:  b.CellW(),
		CellH:  b.CellH(),
		Cols:   b.Cols,
		Rows:   b.Rows,
	}
}

// Cell maps a point to its (column, row), clamping points outside the
// grid onto the nearest edge cell.
func (p GridParams) Cell(pt Point) (col, row int) {
	col = core.Clamp(core.FloorInt((pt.X-p.Margin)/p.CellW), 0, p.Cols-1)
	row = core.Clamp(core.FloorInt((pt.Y-p.Margin)/p.CellH), 0, p.Rows-1)
	return col, row
}

// CellCenter returns the geometric center of a cell.
func (p GridParams) CellCenter(col, row int) (x, y float64) {
	return p.Margin + p.CellW*(float64(col)+0.5), p.Margin + p.CellH*(float64(row)+0.5)
}

// CellOrigin returns the top-left corner of a cell.
func (p GridParams) CellOrigin(col, row int) (x, y float64) {
	return p.Margin + p.CellW*float64(col), p.Margin + p.CellH*float64(row)
}

// Point is a position in board-local units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in board-local units.
type Rect struct {
	X1, Y1 float64 // Top-left
	X2, Y2 float64 // Bottom-right
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// ContainsStrict reports whether p lies inside r, excluding all four edges.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.X1 && p.X < r.X2 && p.Y > r.Y1 && p.Y < r.Y2
}

// ContainsInclusive reports whether p lies inside r or on its edges.
func (r Rect) ContainsInclusive(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// SnapRect rounds the drag from start to current outward to whole cells.
// It is a pure function of its inputs.
func SnapRect(start, current Point, p GridParams) Rect {
	c1, r1 := p.Cell(start)
	c2, r2 := p.Cell(current)

	minCol, maxCol := min(c1, c2), max(c1, c2)
	minRow, maxRow := min(r1, r2), max(r1, r2)

	x1, y1 := p.CellOrigin(minCol, minRow)
	x2, y2 := p.CellOrigin(maxCol+1, maxRow+1)
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// TokensWithin returns the live tokens whose centers lie strictly inside r.
func TokensWithin(b Board, r Rect) []Token {
	var inside []Token
	for _, t := range b.Tokens() {
		if r.ContainsStrict(Point{X: t.X, Y: t.Y}) {
			inside = append(inside, t)
		}
	}
	return inside
}
