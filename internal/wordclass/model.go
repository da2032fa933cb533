package wordclass

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/dada-poem/internal/language"
)

// ErrModelUnavailable means no tagging model could be loaded for a language.
// It is distinct from a model that loads and finds no nouns or verbs.
var ErrModelUnavailable = errors.New("language model unavailable")

// ModelNames maps each supported language to its model file name.
var ModelNames = map[language.Code]string{
	language.German:  "de-news-small",
	language.English: "en-web-small",
}

// ModelLoader loads the tagger for a language.
type ModelLoader interface {
	Load(code language.Code) (Tagger, error)
}

// modelFile is the YAML layout of a model.
type modelFile struct {
	Name                       string           `yaml:"name"`
	Language                   string           `yaml:"language"`
	Capitalized                Tag              `yaml:"capitalized"`
	CapitalizedAtSentenceStart bool             `yaml:"capitalized_at_sentence_start"`
	Default                    Tag              `yaml:"default"`
	Lexicon                    map[Tag][]string `yaml:"lexicon"`
	Suffixes                   []struct {
		Suffix  string `yaml:"suffix"`
		Tag     Tag    `yaml:"tag"`
		MinStem int    `yaml:"min_stem"`
	} `yaml:"suffixes"`
}

// ParseModel decodes a YAML model document.
func ParseModel(data []byte) (*Model, error) {
	var f modelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}
	if len(f.Lexicon) == 0 && len(f.Suffixes) == 0 {
		return nil, errors.New("model has neither lexicon nor suffix rules")
	}

	m := &Model{
		Name:                       f.Name,
		Language:                   f.Language,
		Capitalized:                f.Capitalized,
		CapitalizedAtSentenceStart: f.CapitalizedAtSentenceStart,
		Default:                    f.Default,
		lexicon:                    make(map[string]Tag),
	}
	if m.Default == "" {
		m.Default = X
	}
	for _, tag := range []Tag{m.Capitalized, m.Default} {
		if tag != "" && !knownTags[tag] {
			return nil, fmt.Errorf("unknown tag %q", tag)
		}
	}

	for tag := range f.Lexicon {
		if !knownTags[tag] {
			return nil, fmt.Errorf("unknown lexicon tag %q", tag)
		}
	}
	for _, tag := range tagPriority {
		for _, form := range f.Lexicon[tag] {
			key := strings.ToLower(strings.TrimSpace(form))
			if _, dup := m.lexicon[key]; !dup && key != "" {
				m.lexicon[key] = tag
			}
		}
	}

	for i, s := range f.Suffixes {
		if s.Suffix == "" || !knownTags[s.Tag] {
			return nil, fmt.Errorf("invalid suffix rule %d: %q -> %q", i, s.Suffix, s.Tag)
		}
		m.suffixes = append(m.suffixes, SuffixRule{
			Suffix:  strings.ToLower(s.Suffix),
			Tag:     s.Tag,
			MinStem: s.MinStem,
		})
	}

	return m, nil
}

// Registry loads models from a directory and keeps the ones that loaded.
//
// Failed loads are not remembered, so a model installed while the process
// runs is picked up on the next request. Registry is safe for concurrent use.
type Registry struct {
	dir string

	mu     sync.RWMutex
	models map[language.Code]*Model
}

// NewRegistry returns a registry reading <dir>/<name>.yaml files.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:    dir,
		models: make(map[language.Code]*Model),
	}
}

// Load returns the model for code. Every failure wraps ErrModelUnavailable.
func (r *Registry) Load(code language.Code) (Tagger, error) {
	m, err := r.LoadModel(code)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// LoadModel is Load with the concrete type.
func (r *Registry) LoadModel(code language.Code) (*Model, error) {
	r.mu.RLock()
	if m, ok := r.models[code]; ok {
		r.mu.RUnlock()
		return m, nil
	}
	r.mu.RUnlock()

	name, ok := ModelNames[code]
	if !ok {
		return nil, fmt.Errorf("%w: no model mapped for %q", ErrModelUnavailable, code)
	}

	path := filepath.Join(r.dir, name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModelUnavailable, name, err)
	}

	m, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModelUnavailable, name, err)
	}
	if m.Name == "" {
		m.Name = name
	}

	r.mu.Lock()
	r.models[code] = m
	r.mu.Unlock()

	return m, nil
}
