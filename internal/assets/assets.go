// Package assets loads the optional token sprite and over-screen pictures.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder
)

// MaxSide bounds the longer side of a loaded image. Tokens and the
// over-screen picture are drawn far smaller than this.
const MaxSide = 512

// LoadImage decodes an image file and downsamples it to MaxSide.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return Fit(img, MaxSide), nil
}

// LoadGallery loads every path in order. Files that fail are skipped and
// reported together; the images that did load are still returned.
func LoadGallery(paths []string) ([]image.Image, error) {
	var (
		imgs []image.Image
		errs []error
	)
	for _, p := range paths {
		img, err := LoadImage(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		imgs = append(imgs, img)
	}
	return imgs, errors.Join(errs...)
}

// Fit scales img down so neither side exceeds maxSide, keeping the aspect
// ratio. Images that already fit are returned unchanged.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxSide && b.Dy() <= maxSide {
		return img
	}
	scale := float64(maxSide) / float64(max(b.Dx(), b.Dy()))
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
