package wordclass

import (
	"github.com/ironsheep/dada-poem/internal/language"
)

// Classifier extracts candidate words from text. The result may be empty.
type Classifier interface {
	Classify(text string) []string
	Name() string
}

// contentTags are the tags Pipeline keeps.
var contentTags = map[Tag]bool{
	NOUN:  true,
	PROPN: true,
	VERB:  true,
	AUX:   true,
}

// Pipeline classifies words with a part-of-speech tagger.
type Pipeline struct {
	tagger Tagger
}

// NewPipeline wraps a tagger.
func NewPipeline(t Tagger) *Pipeline {
	return &Pipeline{tagger: t}
}

// Name identifies the strategy in logs and API responses.
func (*Pipeline) Name() string { return "pipeline" }

// Classify keeps alphabetic nouns, proper nouns, verbs and auxiliaries,
// preserving their original spelling and order.
func (p *Pipeline) Classify(text string) []string {
	var words []string
	for _, tok := range p.tagger.Tag(text) {
		if tok.Alpha && contentTags[tok.Tag] {
			words = append(words, tok.Text)
		}
	}
	return words
}

// Select returns a Pipeline for code if its model loads, otherwise the
// Heuristic. The returned error is the model load failure, for logging only;
// the classifier is always usable.
func Select(loader ModelLoader, code language.Code) (Classifier, error) {
	if loader == nil {
		return NewHeuristic(), ErrModelUnavailable
	}
	tagger, err := loader.Load(code)
	if err != nil {
		return NewHeuristic(), err
	}
	return NewPipeline(tagger), nil
}
