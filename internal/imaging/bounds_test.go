package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// imageWithBlock draws a filled block on a solid background.
func imageWithBlock(width, height int, bg, fg color.Color, block image.Rectangle) *image.RGBA {
	img := solidImage(width, height, bg)
	draw.Draw(img, block, &image.Uniform{fg}, image.Point{}, draw.Src)
	return img
}

func TestContentBounds_Blank(t *testing.T) {
	if _, ok := ContentBounds(solidImage(100, 100, color.White), 0); ok {
		t.Error("blank image should have no content bounds")
	}
	if _, ok := ContentBounds(image.NewRGBA(image.Rect(0, 0, 0, 0)), 0); ok {
		t.Error("empty image should have no content bounds")
	}
}

func TestContentBounds_Block(t *testing.T) {
	block := image.Rect(50, 60, 80, 90)
	img := imageWithBlock(200, 200, color.White, color.Black, block)

	r, ok := ContentBounds(img, 0)
	if !ok {
		t.Fatal("expected content")
	}
	if !block.In(r.Inset(-1)) {
		t.Errorf("bounds %v do not cover block %v", r, block)
	}
	if r.Dx() > block.Dx()+2 || r.Dy() > block.Dy()+2 {
		t.Errorf("bounds %v too loose for block %v", r, block)
	}

	padded, _ := ContentBounds(img, 10)
	if padded.Dx() != r.Dx()+20 || padded.Dy() != r.Dy()+20 {
		t.Errorf("padding 10 gave %v from %v", padded, r)
	}
}

func TestContentBounds_ClipsToImage(t *testing.T) {
	img := imageWithBlock(100, 100, color.White, color.Black, image.Rect(2, 2, 98, 98))
	r, ok := ContentBounds(img, 50)
	if !ok {
		t.Fatal("expected content")
	}
	if r != img.Bounds() {
		t.Errorf("bounds = %v, want clipped to %v", r, img.Bounds())
	}
}

func TestContentBounds_LowContrastIgnored(t *testing.T) {
	img := imageWithBlock(100, 100, color.White, color.RGBA{240, 240, 240, 255}, image.Rect(20, 20, 40, 40))
	if _, ok := ContentBounds(img, 0); ok {
		t.Error("a faint block should not count as content")
	}
}

func TestTrimMargins(t *testing.T) {
	img := imageWithBlock(400, 300, color.White, color.Black, image.Rect(100, 100, 140, 120))

	out := TrimMargins(img, 4)
	b := out.Bounds()
	if b.Dx() >= 400 || b.Dy() >= 300 {
		t.Fatalf("margins not trimmed: %v", b)
	}
	if b.Dx() < 40 || b.Dy() < 20 {
		t.Errorf("trimmed image %v smaller than the content", b)
	}

	blank := solidImage(50, 50, color.White)
	if TrimMargins(blank, 4) != image.Image(blank) {
		t.Error("blank image should be returned unchanged")
	}
}

func TestPrepareForOCR_TrimsBeforeUpscale(t *testing.T) {
	img := imageWithBlock(1000, 1000, color.White, color.Black, image.Rect(450, 480, 550, 520))

	out := PrepareForOCR(img, DefaultPrepareOptions())
	b := out.Bounds()
	// about 134x74 after trimming, then scaled 3x
	if b.Dx() >= 1000 || b.Dx() < 300 {
		t.Errorf("prepared width %d, want trimmed then upscaled", b.Dx())
	}
	if b.Dx() <= b.Dy() {
		t.Errorf("aspect ratio lost: %v", b)
	}
}
