package dada

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/dada-poem/internal/language"
	"github.com/ironsheep/dada-poem/internal/poem"
	"github.com/ironsheep/dada-poem/internal/wordclass"
)

// User-facing messages for content absence.
const (
	NoTextMessage = "Kein Text im Bild gefunden."
	NoWordsLine   = "Keine Substantive oder Verben gefunden"
)

// TextExtractor reads the text visible in an image file.
type TextExtractor interface {
	ExtractText(ctx context.Context, imagePath string) (string, error)
}

// LanguageExtractor is a TextExtractor that can recognize additional
// Tesseract languages for a single call. Generate uses it to add the
// override language's traineddata, so umlauts survive OCR when the caller
// says the screenshot is German.
type LanguageExtractor interface {
	TextExtractor
	ExtractTextIn(ctx context.Context, imagePath string, extra ...string) (string, error)
}

// Outcome classifies a completed run.
type Outcome int

const (
	OutcomePoem Outcome = iota
	OutcomeNoText
	OutcomeNoWords
)

func (o Outcome) String() string {
	switch o {
	case OutcomePoem:
		return "poem"
	case OutcomeNoText:
		return "no_text"
	case OutcomeNoWords:
		return "no_words"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is what one run produced.
type Result struct {
	Outcome Outcome

	// Language is the override or the detected language. Empty for
	// OutcomeNoText.
	Language language.Code
	// Detected is true when Language came from detection.
	Detected bool
	// Strategy names the classifier that ran ("pipeline" or "heuristic").
	Strategy string

	Words []string
	Lines []string
	Text  string
}

// Generator runs the pipeline. Extractor is required; the other fields have
// usable zero values.
type Generator struct {
	Extractor TextExtractor
	Models    wordclass.ModelLoader
	// Lines is the poem length; zero means poem.DefaultLines.
	Lines int
	// Rand supplies a source per run; nil means poem.NewRandom.
	Rand func() *rand.Rand
	Log  logrus.FieldLogger
}

func (g *Generator) logger() logrus.FieldLogger {
	if g.Log == nil {
		return logrus.StandardLogger()
	}
	return g.Log
}

func (g *Generator) lines() int {
	if g.Lines == 0 {
		return poem.DefaultLines
	}
	return g.Lines
}

// Generate creates a poem from the image at imagePath. A non-empty override
// skips language detection.
func (g *Generator) Generate(ctx context.Context, imagePath string, override language.Code) (*Result, error) {
	log := g.logger().WithField("image", filepath.Base(imagePath))

	text, err := g.extract(ctx, imagePath, override)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		log.Debug("no text recognized")
		return &Result{Outcome: OutcomeNoText}, nil
	}
	text = language.Normalize(text)

	res := &Result{Language: override}
	if res.Language == "" {
		res.Language = language.Detect(text)
		res.Detected = true
	}

	classifier, err := wordclass.Select(g.Models, res.Language)
	if err != nil {
		log.WithError(err).WithField("language", res.Language).Info("falling back to heuristic classifier")
	}
	res.Strategy = classifier.Name()
	res.Words = classifier.Classify(text)

	log = log.WithFields(logrus.Fields{
		"language": res.Language,
		"strategy": res.Strategy,
		"words":    len(res.Words),
	})

	if len(res.Words) == 0 {
		log.Debug("no nouns or verbs found")
		res.Outcome = OutcomeNoWords
		return res, nil
	}

	var rng *rand.Rand
	if g.Rand != nil {
		rng = g.Rand()
	}
	res.Lines = poem.Assemble(res.Words, g.lines(), rng)
	res.Text = poem.Text(res.Lines)
	res.Outcome = OutcomePoem
	log.Debug("poem assembled")
	return res, nil
}

func (g *Generator) extract(ctx context.Context, imagePath string, override language.Code) (string, error) {
	if lx, ok := g.Extractor.(LanguageExtractor); ok && override.Tesseract() != "" {
		return lx.ExtractTextIn(ctx, imagePath, override.Tesseract())
	}
	return g.Extractor.ExtractText(ctx, imagePath)
}

// GenerateFromUpload stores r in a temporary file with the given suffix
// (e.g. ".png"), runs Generate on it and removes the file again.
func (g *Generator) GenerateFromUpload(ctx context.Context, r io.Reader, suffix string, override language.Code) (*Result, error) {
	f, err := os.CreateTemp("", "dada-upload-*"+sanitizeSuffix(suffix))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return g.Generate(ctx, f.Name(), override)
}

// sanitizeSuffix keeps only a short file extension, so a client-supplied
// filename cannot influence where the temp file is created.
func sanitizeSuffix(suffix string) string {
	ext := filepath.Ext(suffix)
	if len(ext) > 10 || strings.Contains(ext, "*") {
		return ""
	}
	return strings.ToLower(ext)
}
