package fruitbox

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/fruitbox/internal/core"
)

// Theme holds the colours that change with the light toggle.
type Theme struct {
	BgFrom     core.Color // Background gradient, top
	BgTo       core.Color // Background gradient, bottom
	Border     core.Color
	GridLine   core.Color
	TokenInner core.Color // Token highlight
	TokenOuter core.Color // Token rim
}

var (
	defaultTheme = Theme{
		BgFrom:     "#eef6ff",
		BgTo:       "#f3ecff",
		Border:     "#2a2a2a",
		GridLine:   "#d9d9d9",
		TokenInner: "#ff5a5a",
		TokenOuter: "#cc2b2b",
	}
	lightTheme = Theme{
		BgFrom:     "#f9fbff",
		BgTo:       "#fff6fb",
		Border:     "#99aadd",
		GridLine:   "#cfe5ff",
		TokenInner: "#ff8f8f",
		TokenOuter: "#ff4d4d",
	}
)

// ThemeFor returns the light or the default theme.
func ThemeFor(light bool) Theme {
	if light {
		return lightTheme
	}
	return defaultTheme
}

// Colours shared by both themes.
const (
	ColorTokenText   core.Color = "#ffffff"
	ColorSelectGood  core.Color = "#00b478"
	ColorSelectBad   core.Color = "#ff9800"
	ColorSelectBadBg core.Color = "#ffa500"
	ColorTimerTop    core.Color = "#7be495"
	ColorTimerBottom core.Color = "#00b894"
	ColorTimerTrack  core.Color = "#e6e6e6"
	ColorToast       core.Color = "#111827"
	ColorToastMuted  core.Color = "#9ca3af"
	ColorButton      core.Color = "#1f2937"
	ColorOverlayText core.Color = "#ffffff"
)

// Translucent fills, as alpha over whatever is below.
const (
	SelectGoodAlpha  = 0.22
	SelectBadAlpha   = 0.15
	OverlayAlpha     = 0.5
	PlaceholderAlpha = 0.2
)

// SelectionColors returns the fill, its alpha and the outline colour of a
// selection rectangle.
func SelectionColors(good bool) (fill core.Color, alpha float64, stroke core.Color) {
	if good {
		return ColorSelectGood, SelectGoodAlpha, ColorSelectGood
	}
	return ColorSelectBadBg, SelectBadAlpha, ColorSelectBad
}

// ToastColor returns the text colour of a toast at its current age.
func ToastColor(t Toast) core.Color {
	if t.Muted() {
		return ColorToastMuted
	}
	return ColorToast
}

// parse converts a hex Color. Non-hex colours come back as black with ok false.
func parse(c core.Color) (colorful.Color, bool) {
	if !c.IsHex() {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{}, false
	}
	return col, true
}

func toCore(c colorful.Color) core.Color {
	return core.Color(c.Clamped().Hex())
}

// Mix blends from a toward b by t in RGB. When either side is not a hex
// colour the nearer endpoint wins.
func Mix(a, b core.Color, t float64) core.Color {
	ca, okA := parse(a)
	cb, okB := parse(b)
	if !okA || !okB {
		if t < 0.5 {
			return a
		}
		return b
	}
	return toCore(ca.BlendRgb(cb, core.ClampF(t, 0, 1)))
}

// NRGBA converts a hex Color with the given opacity for image drawing.
func NRGBA(c core.Color, alpha float64) color.NRGBA {
	col, _ := parse(c)
	return nrgba(col, alpha)
}

// sample reads img at normalized (u, v) in [0, 1), nearest neighbour.
// Fully transparent pixels report alpha 0.
func sample(img image.Image, u, v float64) (colorful.Color, float64) {
	b := img.Bounds()
	x := b.Min.X + core.Clamp(int(u*float64(b.Dx())), 0, b.Dx()-1)
	y := b.Min.Y + core.Clamp(int(v*float64(b.Dy())), 0, b.Dy()-1)
	px := img.At(x, y)
	col, ok := colorful.MakeColor(px)
	if !ok {
		return colorful.Color{}, 0
	}
	_, _, _, a := px.RGBA()
	return col, float64(a) / 0xffff
}
