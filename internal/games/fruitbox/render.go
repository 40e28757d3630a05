package fruitbox

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/fruitbox/internal/core"
)

// Over screen picture, in board units relative to the board center.
const (
	galleryOffsetX = 90
	galleryOffsetY = -68
	gallerySize    = 96
	galleryCorner  = 16
)

// Render draws the current frame into dst, sized to dst.
func (g *Game) Render(dst *core.Screen) {
	r := renderer{
		g:      g,
		dst:    dst,
		layout: NewLayout(dst.Width(), dst.Height(), g.params),
		theme:  ThemeFor(g.light),
	}
	dst.Clear()

	if r.layout.TooSmall {
		r.drawTooSmall()
		return
	}

	r.drawBackground()
	r.drawGridLines()
	dst.DrawBox(r.layout.Border(), r.theme.Border)
	for _, tok := range g.board.Tokens() {
		r.drawToken(tok.X, tok.Y, tok.R, tok.Value, 1)
	}
	r.drawSelection()
	r.drawTimer()
	for _, e := range g.effects.Ejected() {
		r.drawToken(e.X, e.Y, e.R*e.Scale(), e.Value, e.Alpha())
	}
	r.drawToasts()

	if g.modes.Mode() != ModePlay {
		r.drawOverlay()
	}
}

// renderer holds per-frame drawing state.
type renderer struct {
	g      *Game
	dst    *core.Screen
	layout Layout
	theme  Theme
}

func (r *renderer) drawTooSmall() {
	w, h := MinScreenSize(r.g.params)
	cx, cy := r.dst.Width()/2, r.dst.Height()/2
	r.dst.DrawTextCentered(cx, cy-1, "Terminal too small", core.ColorBrightWhite)
	r.dst.DrawTextCentered(cx, cy, fmt.Sprintf("Need %dx%d", w, h), core.ColorGray)
}

func (r *renderer) drawBackground() {
	from, _ := parse(r.theme.BgFrom)
	to, _ := parse(r.theme.BgTo)
	w, h := r.dst.Width(), r.dst.Height()
	for y := range h {
		bg := toCore(from.BlendRgb(to, float64(y)/float64(max(1, h-1))))
		for x := range w {
			r.dst.SetCell(x, y, core.Cell{Rune: ' ', Bg: bg})
		}
	}
}

// drawGridLines marks every inner grid corner with a dot.
func (r *renderer) drawGridLines() {
	l := r.layout
	p := r.g.params
	for row := 1; row < p.Rows; row++ {
		for col := 1; col < p.Cols; col++ {
			r.dst.DrawText(l.Grid.X+col*l.CellCols, l.Grid.Y+row*l.CellRows, "·", r.theme.GridLine)
		}
	}
}

// pixelColor returns what is currently painted at a half-block pixel.
func (r *renderer) pixelColor(px, py int) colorful.Color {
	if c, ok := parse(r.dst.Pixel(px, py)); ok {
		return c
	}
	c, _ := parse(r.theme.BgFrom)
	return c
}

// cellBg returns the parsed background of a cell.
func (r *renderer) cellBg(x, y int) colorful.Color {
	if c, ok := parse(r.dst.GetCell(x, y).Bg); ok {
		return c
	}
	c, _ := parse(r.theme.BgFrom)
	return c
}

// shadeFunc colours a point of a disc given its offset from the center,
// normalized so the rim is at distance 1.
type shadeFunc func(dx, dy float64) (colorful.Color, float64)

// fillDisc paints the ellipse a board circle becomes on the terminal.
func (r *renderer) fillDisc(x, y, radius float64, shade shadeFunc) {
	sx, sy := r.layout.Scale()
	cx, cy := r.layout.ToScreen(x, y)
	cy *= 2 // pixel rows
	rx := math.Max(radius*sx, 0.75)
	ry := math.Max(radius*sy*2, 1)

	for py := int(math.Floor(cy - ry)); py <= int(math.Ceil(cy+ry)); py++ {
		for px := int(math.Floor(cx - rx)); px <= int(math.Ceil(cx+rx)); px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			c, a := shade(dx, dy)
			if a <= 0 {
				continue
			}
			if a < 1 {
				c = r.pixelColor(px, py).BlendRgb(c, a)
			}
			r.dst.SetPixel(px, py, toCore(c))
		}
	}
}

// tokenShade returns the sprite or the radial gradient look of a token.
func (r *renderer) tokenShade(alpha float64) shadeFunc {
	if sprite := r.g.sprite; sprite != nil {
		return func(dx, dy float64) (colorful.Color, float64) {
			c, a := sample(sprite, (dx+1)/2, (dy+1)/2)
			return c, a * alpha
		}
	}
	inner, _ := parse(r.theme.TokenInner)
	outer, _ := parse(r.theme.TokenOuter)
	return func(dx, dy float64) (colorful.Color, float64) {
		return gradientShade(inner, outer, dx, dy), alpha
	}
}

// drawToken paints one disc with its value on top.
func (r *renderer) drawToken(x, y, radius float64, value int, alpha float64) {
	if alpha <= 0 {
		return
	}
	shade := r.tokenShade(alpha)
	r.fillDisc(x, y, radius, shade)

	cx, cy := r.layout.ToScreen(x, y)
	col, row := int(cx), int(cy)
	if !r.dst.InBounds(col, row) {
		return
	}
	under := r.cellBg(col, row)
	base, a := shade(0, 0)
	bg := under.BlendRgb(base, core.ClampF(a, 0, 1))
	text, _ := parse(ColorTokenText)
	r.dst.SetCell(col, row, core.Cell{
		Rune: []rune(strconv.Itoa(value))[0],
		Fg:   toCore(bg.BlendRgb(text, alpha)),
		Bg:   toCore(bg),
	})
}

// tint blends every cell of area toward c. Text keeps its foreground.
func (r *renderer) tint(area core.Rect, c core.Color, alpha float64) {
	r.dst.Map(area, func(cell core.Cell) core.Cell {
		cell.Bg = Mix(cell.Bg, c, alpha)
		if cell.Rune == core.HalfBlock {
			cell.Fg = Mix(cell.Fg, c, alpha)
		}
		return cell
	})
}

func (r *renderer) drawSelection() {
	sel := r.g.selector.Selection()
	if !sel.Active {
		return
	}
	area := r.layout.RectToScreen(r.g.selector.Rect())
	fill, alpha, stroke := SelectionColors(sel.WouldMatch)
	r.tint(area, fill, alpha)

	// Dashed outline on free cells, solid corners.
	for x := area.X + 1; x < area.Right()-1; x += 2 {
		r.dashAt(x, area.Y, "╌", stroke)
		r.dashAt(x, area.Bottom()-1, "╌", stroke)
	}
	for y := area.Y + 1; y < area.Bottom()-1; y += 2 {
		r.dashAt(area.X, y, "╎", stroke)
		r.dashAt(area.Right()-1, y, "╎", stroke)
	}
	r.dst.DrawText(area.X, area.Y, "┌", stroke)
	r.dst.DrawText(area.Right()-1, area.Y, "┐", stroke)
	r.dst.DrawText(area.X, area.Bottom()-1, "└", stroke)
	r.dst.DrawText(area.Right()-1, area.Bottom()-1, "┘", stroke)
}

func (r *renderer) dashAt(x, y int, s string, c core.Color) {
	if r.dst.Get(x, y) == ' ' {
		r.dst.DrawText(x, y, s, c)
	}
}

// drawTimer fills the bar from the bottom, proportional to time left.
func (r *renderer) drawTimer() {
	border := r.layout.Border()
	x := r.layout.TimerColumn()
	top := border.Y * 2
	height := border.H * 2
	filled := int(math.Round(float64(height) * r.g.clock.Fraction()))

	for i := range height {
		c := ColorTimerTrack
		if i >= height-filled {
			c = Mix(ColorTimerTop, ColorTimerBottom, float64(i)/float64(max(1, height-1)))
		}
		r.dst.SetPixel(x, top+i, c)
	}
}

func (r *renderer) drawToasts() {
	for _, t := range r.g.effects.Toasts() {
		cx, cy := r.layout.ToScreen(t.X, t.Y())
		r.fadeText(int(math.Round(cx)), int(cy), t.Text, ToastColor(t), t.Alpha())
	}
}

// fadeText writes text centered on column cx, its colour faded into each
// cell's background by alpha.
func (r *renderer) fadeText(cx, y int, text string, c core.Color, alpha float64) {
	fg, _ := parse(c)
	runes := []rune(text)
	x0 := cx - len(runes)/2
	for i, ch := range runes {
		x := x0 + i
		if !r.dst.InBounds(x, y) {
			continue
		}
		cell := r.dst.GetCell(x, y)
		bg := r.cellBg(x, y)
		if cell.Rune == core.HalfBlock {
			// The glyph covers both halves; keep the lower one.
			cell.Bg = toCore(bg)
		}
		cell.Rune = ch
		cell.Fg = toCore(bg.BlendRgb(fg, alpha))
		r.dst.SetCell(x, y, cell)
	}
}

func (r *renderer) drawOverlay() {
	g := r.g
	r.dst.Map(r.dst.Bounds(), func(cell core.Cell) core.Cell {
		cell.Bg = Mix(cell.Bg, core.ColorBlack, OverlayAlpha)
		cell.Fg = Mix(cell.Fg, core.ColorBlack, OverlayAlpha)
		return cell
	})

	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	switch g.modes.Mode() {
	case ModeStart:
		r.boardText(w/2, h/2-30, "Fruit Box")
	case ModeOver:
		r.boardText(w/2-60, h/2-30, fmt.Sprintf("Time up! Kisses: %d", g.score))
		r.drawGallery(w/2+galleryOffsetX, h/2+galleryOffsetY)
	}
	if btn, ok := g.modes.VisibleButton(); ok {
		r.drawButton(btn)
	}
}

// boardText writes overlay text centered on a board point.
func (r *renderer) boardText(x, y float64, text string) {
	cx, cy := r.layout.ToScreen(x, y)
	r.dst.DrawTextCentered(int(math.Round(cx)), int(cy), text, ColorOverlayText)
}

func (r *renderer) drawButton(btn Button) {
	area := r.layout.ButtonArea(btn)
	r.dst.FillRect(area, ColorButton)
	cx, _ := area.Center()
	r.dst.DrawTextCentered(cx, area.Y+(area.H-1)/2, btn.Label, ColorOverlayText)
}

// drawGallery shows the first gallery picture with rounded corners, or a
// translucent placeholder with a smiley.
func (r *renderer) drawGallery(x, y float64) {
	x1, y1 := r.layout.ToScreen(x, y)
	x2, y2 := r.layout.ToScreen(x+gallerySize, y+gallerySize)
	y1, y2 = y1*2, y2*2 // pixel rows
	w, h := x2-x1, y2-y1
	if w <= 0 || h <= 0 {
		return
	}
	img := r.g.GalleryImage()
	white, _ := parse(core.ColorWhite)

	for py := int(math.Floor(y1)); py < int(math.Ceil(y2)); py++ {
		for px := int(math.Floor(x1)); px < int(math.Ceil(x2)); px++ {
			u := (float64(px) + 0.5 - x1) / w
			v := (float64(py) + 0.5 - y1) / h
			if !insideRounded(u, v, float64(galleryCorner)/gallerySize) {
				continue
			}
			under := r.pixelColor(px, py)
			var c colorful.Color
			if img != nil {
				sc, a := sample(img, u, v)
				c = under.BlendRgb(sc, a)
			} else {
				c = under.BlendRgb(white, PlaceholderAlpha)
			}
			r.dst.SetPixel(px, py, toCore(c))
		}
	}
	if img == nil {
		cx := int(math.Round((x1 + x2) / 2))
		cy := int((y1 + y2) / 4)
		r.fadeText(cx, cy, "☺", core.ColorWhite, 1)
	}
}

// insideRounded reports whether (u, v) in the unit square lies inside a
// rounded square with corner radius k.
func insideRounded(u, v, k float64) bool {
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return false
	}
	cu := core.ClampF(u, k, 1-k)
	cv := core.ClampF(v, k, 1-k)
	du, dv := u-cu, v-cv
	return du*du+dv*dv <= k*k
}
