package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/dada-poem/internal/imaging"
)

// ErrProcessing is wrapped by every failure to decode an image or run OCR on
// it. Its message is the user-facing text.
var ErrProcessing = errors.New("could not process image")

// DefaultLanguages is used when Options.Languages is empty.
var DefaultLanguages = []string{"eng"}

// Options configures an Engine.
type Options struct {
	// Languages are Tesseract traineddata names, e.g. "eng" or "deu".
	// Several languages are combined ("deu+eng").
	Languages []string

	// TessdataPrefix overrides the directory Tesseract loads traineddata
	// from. Empty uses the system default (TESSDATA_PREFIX or the build
	// location).
	TessdataPrefix string

	// Preprocess runs imaging.PrepareForOCR before recognition.
	Preprocess bool

	// Prepare tunes preprocessing. The zero value means
	// imaging.DefaultPrepareOptions.
	Prepare *imaging.PrepareOptions
}

// Engine extracts text from images with Tesseract.
//
// Each call creates and closes its own gosseract client, so an Engine can be
// shared between concurrent requests.
type Engine struct {
	opts          Options
	clientFactory func() *gosseract.Client
}

// NewEngine creates a Tesseract-backed engine.
func NewEngine(opts Options) *Engine {
	if len(opts.Languages) == 0 {
		opts.Languages = DefaultLanguages
	}
	if opts.Prepare == nil {
		p := imaging.DefaultPrepareOptions()
		opts.Prepare = &p
	}
	return &Engine{opts: opts, clientFactory: gosseract.NewClient}
}

// Languages returns the Tesseract languages the engine recognizes.
func (e *Engine) Languages() []string {
	return append([]string(nil), e.opts.Languages...)
}

// ExtractText performs OCR on the image file at imagePath and returns the
// recognized text with its original line breaks.
//
// Parameters:
//   - ctx: Checked before the image is read and before recognition starts.
//     Tesseract itself cannot be interrupted once running.
//   - imagePath: Path to a PNG, JPEG, GIF, BMP, TIFF or WebP file.
//
// Returns:
//   - string: Recognized text. Empty or whitespace-only when the image holds
//     no legible text; that is not an error.
//   - error: Wraps ErrProcessing if the file is missing or undecodable or
//     Tesseract fails. A missing file also satisfies errors.Is(err,
//     os.ErrNotExist).
//
// # Image Handling
//
// The file is always decoded in Go first, so unsupported formats fail the
// same way regardless of how Leptonica was built. The decoded image (after
// optional preprocessing) is handed to Tesseract as PNG bytes.
func (e *Engine) ExtractText(ctx context.Context, imagePath string) (string, error) {
	return e.ExtractTextIn(ctx, imagePath)
}

// ExtractTextIn is ExtractText with extra Tesseract languages recognized
// alongside the configured ones, e.g. "deu" when the caller knows the
// screenshot is German. Empty and duplicate names are ignored.
func (e *Engine) ExtractTextIn(ctx context.Context, imagePath string, extra ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, _, err := imaging.Load(imagePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProcessing, err)
	}
	return e.extract(ctx, img, e.languagesWith(extra))
}

// ExtractTextFromImage performs OCR on an already decoded image.
func (e *Engine) ExtractTextFromImage(ctx context.Context, img image.Image) (string, error) {
	return e.extract(ctx, img, e.opts.Languages)
}

func (e *Engine) extract(ctx context.Context, img image.Image, languages []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if e.opts.Preprocess {
		img = imaging.PrepareForOCR(img, *e.opts.Prepare)
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return e.recognize(data, languages)
}

// languagesWith appends extra to the configured languages, skipping
// duplicates.
func (e *Engine) languagesWith(extra []string) []string {
	langs := e.Languages()
	for _, l := range extra {
		if l != "" && !slices.Contains(langs, l) {
			langs = append(langs, l)
		}
	}
	return langs
}

func (e *Engine) recognize(png []byte, languages []string) (string, error) {
	client := e.clientFactory()
	defer client.Close()

	if e.opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(e.opts.TessdataPrefix); err != nil {
			return "", fmt.Errorf("%w: failed to set tessdata path: %w", ErrProcessing, err)
		}
	}

	if err := client.SetLanguage(languages...); err != nil {
		return "", fmt.Errorf("%w: failed to set language: %w", ErrProcessing, err)
	}

	if err := client.SetImageFromBytes(png); err != nil {
		return "", fmt.Errorf("%w: failed to set image: %w", ErrProcessing, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: OCR failed: %w", ErrProcessing, err)
	}
	return text, nil
}

// OCRInfo describes the OCR backend for health checks.
type OCRInfo struct {
	Available      bool     `json:"available"`
	Version        string   `json:"version,omitempty"`
	Error          string   `json:"error,omitempty"`
	Backend        string   `json:"backend"`
	Languages      []string `json:"languages"`
	TessdataPrefix string   `json:"tessdata_prefix,omitempty"`
}

// Info reports whether Tesseract can be initialized with the configured
// languages and tessdata location.
//
// gosseract initializes lazily on the first recognition, so Info runs one
// on a tiny blank image. A missing traineddata file or a wrong tessdata
// prefix therefore shows up here instead of on the first upload.
func (e *Engine) Info() OCRInfo {
	info := OCRInfo{
		Backend:        "gosseract",
		Languages:      e.Languages(),
		TessdataPrefix: e.opts.TessdataPrefix,
	}

	client := e.clientFactory()
	info.Version = strings.TrimSpace(client.Version())
	client.Close()
	if info.Version == "" {
		info.Error = "tesseract version unavailable"
		return info
	}

	blank, err := imaging.EncodePNG(image.NewGray(image.Rect(0, 0, blankEdge, blankEdge)))
	if err != nil {
		info.Error = err.Error()
		return info
	}
	if _, err := e.recognize(blank, e.opts.Languages); err != nil {
		info.Error = err.Error()
		return info
	}

	info.Available = true
	return info
}

// blankEdge is the edge length of the blank image Info recognizes.
const blankEdge = 32
