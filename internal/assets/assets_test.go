package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	path := writePNG(t, t.TempDir(), "sprite.png", 32, 16)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("bounds = %v, want 32x16", b)
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("missing file: expected error")
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(junk); err == nil {
		t.Error("junk file: expected error")
	}
}

func TestLoadGalleryKeepsGoodImages(t *testing.T) {
	dir := t.TempDir()
	first := writePNG(t, dir, "a.png", 8, 8)
	second := writePNG(t, dir, "b.png", 4, 4)

	imgs, err := LoadGallery([]string{first, filepath.Join(dir, "nope.png"), second})
	if err == nil {
		t.Error("expected an error for the missing file")
	}
	if len(imgs) != 2 {
		t.Fatalf("loaded %d images, want 2", len(imgs))
	}
	if imgs[0].Bounds().Dx() != 8 {
		t.Error("gallery order not preserved")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"already small", 100, 50, 512, 100, 50},
		{"wide", 1024, 512, 512, 512, 256},
		{"tall", 300, 1200, 600, 150, 600},
		{"thin line stays visible", 4000, 2, 100, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			b := Fit(img, tt.max).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Fit = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}
