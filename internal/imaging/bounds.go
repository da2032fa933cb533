package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// edgeThreshold is the minimum gray-level step (0..255) between neighboring
// pixels that counts as an edge.
const edgeThreshold = 30

// ContentBounds returns the smallest rectangle containing every edge pixel
// of img, grown by padding on each side and clipped to the image bounds.
// ok is false for images without edges, such as blank screenshots.
//
// Edges use a simple gradient test: a pixel is an edge when its gray value
// differs from its right or lower neighbor by more than edgeThreshold.
func ContentBounds(img image.Image, padding int) (r image.Rectangle, ok bool) {
	b := img.Bounds()
	if b.Empty() {
		return image.Rectangle{}, false
	}

	gray := imaging.Grayscale(img)
	w, h := b.Dx(), b.Dy()
	at := func(x, y int) int {
		// NRGBA from Grayscale has equal R, G and B.
		return int(gray.Pix[y*gray.Stride+x*4])
	}

	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := at(x, y)
			edge := (x+1 < w && abs(c-at(x+1, y)) > edgeThreshold) ||
				(y+1 < h && abs(c-at(x, y+1)) > edgeThreshold)
			if !edge {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}

	r = image.Rect(minX-padding, minY-padding, maxX+1+padding, maxY+1+padding)
	return r.Add(b.Min).Intersect(b), true
}

// TrimMargins crops img to its content plus padding. Blank images and
// images whose content already fills the frame are returned unchanged.
func TrimMargins(img image.Image, padding int) image.Image {
	r, ok := ContentBounds(img, padding)
	if !ok || r == img.Bounds() {
		return img
	}
	return imaging.Crop(img, r)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
