package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrUndecodable is returned when image data is not in a supported format.
var ErrUndecodable = errors.New("image could not be decoded")

// Info describes a decoded image.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the name the decoder registered: "png", "jpeg", "gif",
	// "bmp", "tiff" or "webp".
	Format string `json:"format"`
}

// Decode reads and decodes an image from r.
//
// Parameters:
//   - r: Image bytes in any registered format.
//
// Returns:
//   - image.Image: The decoded image.
//   - *Info: Dimensions and detected format.
//   - error: Wraps ErrUndecodable if the data is empty, truncated or in an
//     unsupported format.
func Decode(r io.Reader) (image.Image, *Info, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, nil, fmt.Errorf("%w: image has no pixels", ErrUndecodable)
	}
	return img, &Info{Width: b.Dx(), Height: b.Dy(), Format: format}, nil
}

// DecodeBytes is Decode for an in-memory buffer.
func DecodeBytes(data []byte) (image.Image, *Info, error) {
	return Decode(bytes.NewReader(data))
}

// Load opens and decodes the image file at path.
//
// A missing file yields an error satisfying errors.Is(err, os.ErrNotExist);
// unreadable content yields ErrUndecodable.
func Load(path string) (image.Image, *Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, info, err := Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, info, nil
}
