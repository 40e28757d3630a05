package core

import (
	"strings"
)

// HalfBlock is the rune used for pixel rendering: the foreground paints the
// upper half of a cell and the background paints the lower half.
const HalfBlock = '▀'

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune and pixel operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear resets every cell to a space with default colors.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// InBounds reports whether (x, y) is a valid cell position.
func (s *Screen) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune at the given position, keeping the cell colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces the whole cell at the given position.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.InBounds(x, y) {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.InBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// SetPixel paints one half-block pixel. Pixel rows are twice as dense as
// character rows: py/2 selects the cell, py%2 the upper or lower half.
func (s *Screen) SetPixel(px, py int, c Color) {
	x, y := px, py/2
	if py < 0 || !s.InBounds(x, y) {
		return
	}
	cell := &s.cells[y][x]
	if cell.Rune != HalfBlock {
		// Both halves start out as the current background.
		cell.Fg = cell.Bg
		cell.Rune = HalfBlock
	}
	if py%2 == 0 {
		cell.Fg = c
	} else {
		cell.Bg = c
	}
}

// Pixel returns the visible color of a half-block pixel.
func (s *Screen) Pixel(px, py int) Color {
	x, y := px, py/2
	if py < 0 || !s.InBounds(x, y) {
		return ColorDefault
	}
	cell := s.cells[y][x]
	if cell.Rune == HalfBlock && py%2 == 0 {
		return cell.Fg
	}
	return cell.Bg
}

// DrawText writes a string horizontally starting at (x, y) with the given
// foreground. Backgrounds are left untouched so text sits on whatever is below.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		if s.InBounds(x+i, y) {
			cell := &s.cells[y][x+i]
			cell.Rune = r
			cell.Fg = fg
		}
		i++
	}
}

// DrawTextCentered draws text centered on column cx.
func (s *Screen) DrawTextCentered(cx, y int, text string, fg Color) {
	s.DrawText(cx-len([]rune(text))/2, y, text, fg)
}

// FillRect fills a rectangular area with spaces on the given background.
func (s *Screen) FillRect(r Rect, bg Color) {
	s.Map(r, func(Cell) Cell {
		return Cell{Rune: ' ', Bg: bg}
	})
}

// DrawBox draws a box outline using box-drawing characters, keeping backgrounds.
func (s *Screen) DrawBox(r Rect, fg Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.DrawText(r.X, r.Y, "┌", fg)
	s.DrawText(r.Right()-1, r.Y, "┐", fg)
	s.DrawText(r.X, r.Bottom()-1, "└", fg)
	s.DrawText(r.Right()-1, r.Bottom()-1, "┘", fg)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.DrawText(x, r.Y, "─", fg)
		s.DrawText(x, r.Bottom()-1, "─", fg)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.DrawText(r.X, y, "│", fg)
		s.DrawText(r.Right()-1, y, "│", fg)
	}
}

// Map replaces every cell inside r with f(cell), clipped to the screen.
func (s *Screen) Map(r Rect, f func(Cell) Cell) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.cells[y][x] = f(s.cells[y][x])
		}
	}
}

// Bounds returns the full screen rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// String converts the screen buffer to plain text, dropping colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
