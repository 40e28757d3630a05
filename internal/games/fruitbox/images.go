package fruitbox

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/fruitbox/internal/core"
)

// gradientShade is the procedural token look: a radial gradient whose
// highlight sits up and to the left of the center.
func gradientShade(inner, outer colorful.Color, dx, dy float64) colorful.Color {
	t := core.ClampF(math.Hypot(dx+0.4, dy+0.4)/1.4, 0, 1)
	return inner.BlendRgb(outer, t)
}

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(core.ClampF(alpha, 0, 1)*255 + 0.5)}
}

// TokenImage renders a size x size token disc with antialiased edges:
// the sprite clipped to a circle, or the theme gradient without one.
func TokenImage(t Theme, sprite image.Image, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	inner, _ := parse(t.TokenInner)
	outer, _ := parse(t.TokenOuter)
	r := float64(size) / 2

	for y := range size {
		for x := range size {
			dx := (float64(x) + 0.5 - r) / r
			dy := (float64(y) + 0.5 - r) / r
			coverage := core.ClampF((1-math.Hypot(dx, dy))*r+0.5, 0, 1)
			if coverage == 0 {
				continue
			}
			if sprite == nil {
				img.SetNRGBA(x, y, nrgba(gradientShade(inner, outer, dx, dy), coverage))
				continue
			}
			c, a := sample(sprite, (dx+1)/2, (dy+1)/2)
			img.SetNRGBA(x, y, nrgba(c, a*coverage))
		}
	}
	return img
}

// RoundedImage scales img into a size x size square and cuts its corners
// to the given radius.
func RoundedImage(img image.Image, size int, radius float64) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	k := radius / float64(size)
	for y := range size {
		for x := range size {
			u := (float64(x) + 0.5) / float64(size)
			v := (float64(y) + 0.5) / float64(size)
			if !insideRounded(u, v, k) {
				continue
			}
			c, a := sample(img, u, v)
			out.SetNRGBA(x, y, nrgba(c, a))
		}
	}
	return out
}

// VerticalGradient renders a w x h image fading from top to bottom.
func VerticalGradient(top, bottom core.Color, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ct, _ := parse(top)
	cb, _ := parse(bottom)
	for y := range h {
		c := nrgba(ct.BlendRgb(cb, float64(y)/float64(max(1, h-1))), 1)
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}
