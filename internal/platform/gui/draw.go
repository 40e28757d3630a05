package gui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/fruitbox/internal/core"
	"github.com/vovakirdan/fruitbox/internal/games/fruitbox"
)

// Fixed geometry in board units.
const (
	borderInset = 6
	borderWidth = 12

	timerRight  = 22
	timerTop    = 16
	timerWidth  = 8
	dashLen     = 6
	dashGap     = 4
	strokeWidth = 2

	tokenTexSize = 64
	gallerySize  = 96
	galleryR     = 16

	// The debug font is 6x16 per glyph.
	glyphW = 6
	glyphH = 16
)

// textures caches GPU images that only change with the theme or assets.
type textures struct {
	light  bool
	sprite image.Image
	ready  bool

	token      *ebiten.Image
	background *ebiten.Image
	timer      *ebiten.Image

	gallerySrc  image.Image
	gallery     *ebiten.Image
	placeholder *ebiten.Image

	labels map[string]*ebiten.Image
}

func newTextures() *textures {
	return &textures{labels: make(map[string]*ebiten.Image)}
}

func (t *textures) update(game *fruitbox.Game, s fruitbox.Snapshot) {
	theme := fruitbox.ThemeFor(s.Light)
	w, h := int(s.BoardW), int(s.BoardH)
	sprite := game.Sprite()

	if !t.ready || t.light != s.Light || t.sprite != sprite {
		t.token = ebiten.NewImageFromImage(fruitbox.TokenImage(theme, sprite, tokenTexSize))
		t.background = ebiten.NewImageFromImage(fruitbox.VerticalGradient(theme.BgFrom, theme.BgTo, w, h))
		t.light, t.sprite = s.Light, sprite
	}
	if !t.ready {
		t.timer = ebiten.NewImageFromImage(fruitbox.VerticalGradient(
			fruitbox.ColorTimerTop, fruitbox.ColorTimerBottom, timerWidth, h-2*timerTop))
		t.placeholder = ebiten.NewImageFromImage(fruitbox.RoundedImage(
			solid(fruitbox.NRGBA(core.ColorWhite, fruitbox.PlaceholderAlpha)), gallerySize, galleryR))
		t.ready = true
	}
	if src := game.GalleryImage(); src != t.gallerySrc {
		t.gallerySrc = src
		t.gallery = nil
		if src != nil {
			t.gallery = ebiten.NewImageFromImage(fruitbox.RoundedImage(src, gallerySize, galleryR))
		}
	}
}

// label returns white text on a transparent image, drawn once per string.
func (t *textures) label(text string) *ebiten.Image {
	if img, ok := t.labels[text]; ok {
		return img
	}
	img := ebiten.NewImage(max(1, len([]rune(text))*glyphW), glyphH)
	ebitenutil.DebugPrint(img, text)
	t.labels[text] = img
	return img
}

func solid(c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, c)
	return img
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	s := h.game.Snapshot()
	theme := fruitbox.ThemeFor(s.Light)
	h.textures.update(h.game, s)
	d := drawer{dst: screen, tex: h.textures, snap: s}

	screen.DrawImage(h.textures.background, nil)
	d.grid(theme)
	for _, tok := range s.Tokens {
		d.token(tok.X, tok.Y, tok.R, tok.Value, 1)
	}
	if s.Selection.Active {
		d.selection()
	}
	d.timer()
	for _, e := range s.Ejected {
		d.token(e.X, e.Y, e.R*e.Scale(), e.Value, e.Alpha())
	}
	for _, t := range s.Toasts {
		d.text(t.Text, t.X, t.Y(), 1, fruitbox.ToastColor(t), t.Alpha())
	}
	if s.Mode != fruitbox.ModePlay {
		d.overlay()
	}
}

type drawer struct {
	dst  *ebiten.Image
	tex  *textures
	snap fruitbox.Snapshot
}

func (d drawer) grid(theme fruitbox.Theme) {
	s := d.snap
	w, h := float32(s.BoardW), float32(s.BoardH)
	vector.StrokeRect(d.dst, borderInset, borderInset, w-2*borderInset, h-2*borderInset,
		borderWidth, fruitbox.NRGBA(theme.Border, 1), false)

	p := s.Params
	line := fruitbox.NRGBA(theme.GridLine, 1)
	left, top := float32(p.Margin), float32(p.Margin)
	right, bottom := w-left, h-top
	for i := 1; i < p.Cols; i++ {
		x := left + float32(float64(i)*p.CellW)
		vector.StrokeLine(d.dst, x, top, x, bottom, 1, line, false)
	}
	for j := 1; j < p.Rows; j++ {
		y := top + float32(float64(j)*p.CellH)
		vector.StrokeLine(d.dst, left, y, right, y, 1, line, false)
	}
}

func (d drawer) token(x, y, r float64, value int, alpha float64) {
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(2*r/tokenTexSize, 2*r/tokenTexSize)
	op.GeoM.Translate(x-r, y-r)
	op.ColorScale.ScaleAlpha(float32(alpha))
	d.dst.DrawImage(d.tex.token, op)

	d.text(strconv.Itoa(value), x, y+1, 1, fruitbox.ColorTokenText, alpha)
}

func (d drawer) selection() {
	r := d.snap.SelectionRect
	fill, alpha, stroke := fruitbox.SelectionColors(d.snap.Selection.WouldMatch)
	x1, y1, x2, y2 := float32(r.X1), float32(r.Y1), float32(r.X2), float32(r.Y2)
	vector.DrawFilledRect(d.dst, x1, y1, x2-x1, y2-y1, fruitbox.NRGBA(fill, alpha), false)

	c := fruitbox.NRGBA(stroke, 1)
	d.dashed(x1, y1, x2, y1, c)
	d.dashed(x2, y1, x2, y2, c)
	d.dashed(x2, y2, x1, y2, c)
	d.dashed(x1, y2, x1, y1, c)
}

// dashed strokes an axis-aligned line as 6-on 4-off dashes.
func (d drawer) dashed(x0, y0, x1, y1 float32, c color.Color) {
	dx, dy := sign(x1-x0), sign(y1-y0)
	length := abs(x1-x0) + abs(y1-y0)
	for pos := float32(0); pos < length; pos += dashLen + dashGap {
		end := min(pos+dashLen, length)
		vector.StrokeLine(d.dst,
			x0+dx*pos, y0+dy*pos, x0+dx*end, y0+dy*end,
			strokeWidth, c, false)
	}
}

func (d drawer) timer() {
	s := d.snap
	x := float32(s.BoardW - timerRight)
	h := float32(s.BoardH - 2*timerTop)
	vector.DrawFilledRect(d.dst, x, timerTop, timerWidth, h, fruitbox.NRGBA(fruitbox.ColorTimerTrack, 1), false)

	fill := int(float64(h) * s.TimeFraction())
	if fill <= 0 {
		return
	}
	b := d.tex.timer.Bounds()
	sub := d.tex.timer.SubImage(image.Rect(0, b.Dy()-fill, b.Dx(), b.Dy())).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(timerTop+b.Dy()-fill))
	d.dst.DrawImage(sub, op)
}

func (d drawer) overlay() {
	s := d.snap
	w, h := s.BoardW, s.BoardH
	vector.DrawFilledRect(d.dst, 0, 0, float32(w), float32(h), fruitbox.NRGBA(core.ColorBlack, fruitbox.OverlayAlpha), false)

	switch s.Mode {
	case fruitbox.ModeStart:
		d.text("Fruit Box", w/2, h/2-30, 2, fruitbox.ColorOverlayText, 1)
	case fruitbox.ModeOver:
		d.text("Time up! Kisses: "+strconv.Itoa(s.Score), w/2-60, h/2-30, 2, fruitbox.ColorOverlayText, 1)
		d.gallery(w/2+90, h/2-68)
	}
	if s.HasButton {
		d.button(s.Button)
	}
}

func (d drawer) gallery(x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	if d.tex.gallery != nil {
		d.dst.DrawImage(d.tex.gallery, op)
		return
	}
	d.dst.DrawImage(d.tex.placeholder, op)
	d.text(":)", x+gallerySize/2, y+gallerySize/2+4, 3, fruitbox.ColorOverlayText, 1)
}

func (d drawer) button(b fruitbox.Button) {
	vector.DrawFilledRect(d.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
		fruitbox.NRGBA(fruitbox.ColorButton, 1), false)
	d.text(b.Label, b.X+b.W/2, b.Y+b.H/2, 1, fruitbox.ColorOverlayText, 1)
}

// text draws a label centered on (cx, cy).
func (d drawer) text(s string, cx, cy, scale float64, c core.Color, alpha float64) {
	img := d.tex.label(s)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(fruitbox.NRGBA(c, 1))
	op.ColorScale.ScaleAlpha(float32(alpha))
	d.dst.DrawImage(img, op)
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
