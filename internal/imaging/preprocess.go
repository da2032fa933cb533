package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// PrepareOptions tunes PrepareForOCR.
type PrepareOptions struct {
	// TrimMargins crops blank borders before scaling, so the upscale budget
	// goes to the text instead of empty background.
	TrimMargins bool

	// MarginPadding is the border kept around the content when trimming.
	MarginPadding int

	// MinShortEdge upscales images whose shorter side is below this many
	// pixels. Zero disables upscaling.
	MinShortEdge int

	// MaxScale caps the upscale factor.
	MaxScale float64

	// DarkThreshold is the CIE L* (0..1) of the average color below which
	// the image is treated as light-on-dark and inverted.
	DarkThreshold float64

	// Contrast is the bild contrast change (-1..1). Zero leaves contrast alone.
	Contrast float64

	// Sharpen applies a 3x3 sharpen kernel after contrast.
	Sharpen bool
}

// DefaultPrepareOptions suit typical desktop and phone screenshots.
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{
		TrimMargins:   true,
		MarginPadding: 16,
		MinShortEdge:  600,
		MaxScale:      3.0,
		DarkThreshold: 0.5,
		Contrast:      0.3,
		Sharpen:       true,
	}
}

// PrepareForOCR returns a grayscale, dark-on-light, contrast-boosted copy of
// img that Tesseract reads more reliably than raw screenshots.
//
// # Steps
//
//  1. Trim blank margins.
//  2. Upscale small images with Lanczos resampling. Tesseract works best
//     with glyphs at least 20 pixels tall.
//  3. Convert to grayscale.
//  4. Invert if the image is dark (dark-mode UIs), so text is dark on light.
//  5. Boost contrast and sharpen.
//
// The input image is never modified.
func PrepareForOCR(img image.Image, opts PrepareOptions) image.Image {
	var out image.Image = img
	if opts.TrimMargins {
		out = TrimMargins(out, opts.MarginPadding)
	}

	b := out.Bounds()
	if short := min(b.Dx(), b.Dy()); opts.MinShortEdge > 0 && short > 0 && short < opts.MinShortEdge {
		scale := float64(opts.MinShortEdge) / float64(short)
		if opts.MaxScale > 0 && scale > opts.MaxScale {
			scale = opts.MaxScale
		}
		out = imaging.Resize(out, int(float64(b.Dx())*scale), int(float64(b.Dy())*scale), imaging.Lanczos)
	}

	out = imaging.Grayscale(out)

	if IsDark(out, opts.DarkThreshold) {
		out = imaging.Invert(out)
	}

	if opts.Contrast != 0 {
		out = adjust.Contrast(out, opts.Contrast)
	}
	if opts.Sharpen {
		out = effect.Sharpen(out)
	}

	return out
}

// IsDark reports whether the average color of img has a CIE L* lightness
// below threshold (0..1).
func IsDark(img image.Image, threshold float64) bool {
	return AverageLightness(img) < threshold
}

// AverageLightness returns the CIE L* (0..1) of the image's average color.
// The average comes from a box-filtered 1x1 downscale.
func AverageLightness(img image.Image) float64 {
	if img.Bounds().Empty() {
		return 1
	}
	avg := imaging.Resize(img, 1, 1, imaging.Box)
	c, ok := colorful.MakeColor(avg.At(0, 0))
	if !ok {
		// Fully transparent; treat as a light background.
		return 1
	}
	l, _, _ := c.Lab()
	return l
}

// EncodePNG encodes img as PNG bytes for OCR engines that take a buffer.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
