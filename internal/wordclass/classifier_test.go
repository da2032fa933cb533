package wordclass

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ironsheep/dada-poem/internal/language"
)

type stubTagger []Token

func (s stubTagger) Tag(string) []Token { return s }

type stubLoader struct {
	tagger Tagger
	err    error
	calls  []language.Code
}

func (l *stubLoader) Load(code language.Code) (Tagger, error) {
	l.calls = append(l.calls, code)
	return l.tagger, l.err
}

func TestPipeline_KeepsContentTags(t *testing.T) {
	p := NewPipeline(stubTagger{
		{Text: "Haus", Tag: NOUN, Alpha: true},
		{Text: "schön", Tag: ADJ, Alpha: true},
		{Text: "Berlin", Tag: PROPN, Alpha: true},
		{Text: "läuft", Tag: VERB, Alpha: true},
		{Text: "ist", Tag: AUX, Alpha: true},
		{Text: "R2D2", Tag: PROPN, Alpha: false},
		{Text: "und", Tag: CONJ, Alpha: true},
		{Text: "Haus", Tag: NOUN, Alpha: true},
	})
	got := p.Classify("ignored")
	want := []string{"Haus", "Berlin", "läuft", "ist", "Haus"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %q, want %q", got, want)
	}
}

func TestSelect_PipelineWhenModelLoads(t *testing.T) {
	loader := &stubLoader{tagger: stubTagger{}}
	c, err := Select(loader, language.German)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if c.Name() != "pipeline" {
		t.Errorf("strategy = %s, want pipeline", c.Name())
	}
	// A loaded model with zero matches is still the pipeline, not a fallback.
	if words := c.Classify("anything"); len(words) != 0 {
		t.Errorf("expected zero words, got %q", words)
	}
	if !reflect.DeepEqual(loader.calls, []language.Code{language.German}) {
		t.Errorf("loader calls = %v", loader.calls)
	}
}

func TestSelect_HeuristicOnLoadFailure(t *testing.T) {
	loader := &stubLoader{err: ErrModelUnavailable}
	c, err := Select(loader, language.English)
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("err = %v, want ErrModelUnavailable", err)
	}
	if c == nil || c.Name() != "heuristic" {
		t.Fatalf("strategy = %v, want heuristic", c)
	}
	if got := c.Classify("wonderful big Apfel"); !reflect.DeepEqual(got, []string{"wonderful", "Apfel"}) {
		t.Errorf("fallback Classify = %q", got)
	}
}

func TestSelect_NilLoader(t *testing.T) {
	c, err := Select(nil, language.German)
	if err == nil || c.Name() != "heuristic" {
		t.Errorf("Select(nil) = %v, %v", c, err)
	}
}

func TestRegistry_LoadAndCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ModelNames[language.German]+".yaml")
	if err := os.WriteFile(path, []byte(testModelYAML), 0644); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry(dir)
	m1, err := reg.LoadModel(language.German)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	m2, err := reg.LoadModel(language.German)
	if err != nil {
		t.Fatalf("second LoadModel: %v", err)
	}
	if m1 != m2 {
		t.Error("second load did not return the cached model")
	}
	if m1.Name != "test-de" {
		t.Errorf("Name = %q", m1.Name)
	}
}

func TestRegistry_Unavailable(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(dir)

	if _, err := reg.Load(language.English); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("missing file: err = %v", err)
	}
	if _, err := reg.Load(language.Code("fr")); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("unmapped code: err = %v", err)
	}

	bad := filepath.Join(dir, ModelNames[language.German]+".yaml")
	if err := os.WriteFile(bad, []byte("lexicon: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Load(language.German); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("invalid yaml: err = %v", err)
	}
}

func TestRegistry_FailuresAreNotCached(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(dir)
	if _, err := reg.Load(language.German); err == nil {
		t.Fatal("expected failure before model exists")
	}

	path := filepath.Join(dir, ModelNames[language.German]+".yaml")
	if err := os.WriteFile(path, []byte(testModelYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Load(language.German); err != nil {
		t.Errorf("model installed later should load: %v", err)
	}
}
