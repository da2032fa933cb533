package wordclass

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ironsheep/dada-poem/internal/language"
)

const testModelYAML = `
name: test-de
language: de
capitalized: NOUN
capitalized_at_sentence_start: true
default: X
lexicon:
  DET: [der, die, das]
  AUX: [ist, sein]
  PRON: [sein]
  VERB: [läuft]
suffixes:
  - {suffix: en, tag: VERB, min_stem: 2}
`

func mustParseModel(t *testing.T, doc string) *Model {
	t.Helper()
	m, err := ParseModel([]byte(doc))
	if err != nil {
		t.Fatalf("ParseModel failed: %v", err)
	}
	return m
}

func TestModel_Tag(t *testing.T) {
	m := mustParseModel(t, testModelYAML)

	got := m.Tag("Der Hund ist 3 Jahre alt, abc123 rennen.")
	want := []Token{
		{Text: "Der", Tag: DET, Alpha: true},
		{Text: "Hund", Tag: NOUN, Alpha: true},
		{Text: "ist", Tag: AUX, Alpha: true},
		{Text: "3", Tag: NUM, Alpha: false},
		{Text: "Jahre", Tag: NOUN, Alpha: true},
		{Text: "alt", Tag: X, Alpha: true},
		{Text: ",", Tag: PUNCT, Alpha: false},
		{Text: "abc123", Tag: X, Alpha: false},
		{Text: "rennen", Tag: VERB, Alpha: true},
		{Text: ".", Tag: PUNCT, Alpha: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tag mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestModel_LexiconPriority(t *testing.T) {
	m := mustParseModel(t, testModelYAML)
	// "sein" is listed under AUX and PRON; AUX has priority.
	toks := m.Tag("sein")
	if len(toks) != 1 || toks[0].Tag != AUX {
		t.Errorf("Tag(sein) = %+v, want AUX", toks)
	}
}

func TestModel_SentenceStartCapitalization(t *testing.T) {
	m := mustParseModel(t, `
capitalized: PROPN
capitalized_at_sentence_start: false
default: NOUN
suffixes:
  - {suffix: ly, tag: ADV, min_stem: 3}
`)
	toks := m.Tag("Quickly went Paris. Slowly")
	tags := make([]Tag, len(toks))
	for i, tok := range toks {
		tags[i] = tok.Tag
	}
	want := []Tag{ADV, NOUN, PROPN, PUNCT, ADV}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestModel_SuffixMinStem(t *testing.T) {
	m := mustParseModel(t, testModelYAML)
	// "en" needs a stem of two runes: "ben" has one.
	if toks := m.Tag("ben"); toks[0].Tag != X {
		t.Errorf("Tag(ben) = %v, want X", toks[0].Tag)
	}
	if toks := m.Tag("geben"); toks[0].Tag != VERB {
		t.Errorf("Tag(geben) = %v, want VERB", toks[0].Tag)
	}
}

func TestParseModel_Errors(t *testing.T) {
	bad := map[string]string{
		"not yaml":       "lexicon: [unclosed",
		"empty":          "name: nothing\n",
		"unknown tag":    "lexicon:\n  FOO: [bar]\n",
		"bad suffix tag": "suffixes:\n  - {suffix: en, tag: FOO}\n",
		"empty suffix":   "suffixes:\n  - {suffix: '', tag: VERB}\n",
		"bad default":    "default: FOO\nlexicon:\n  NOUN: [haus]\n",
	}
	for name, doc := range bad {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseModel([]byte(doc)); err == nil {
				t.Errorf("ParseModel should fail for %s", name)
			}
		})
	}
}

func TestShippedModels(t *testing.T) {
	reg := NewRegistry(filepath.Join("..", "..", "models"))

	de, err := reg.LoadModel(language.German)
	if err != nil {
		t.Fatalf("German model: %v", err)
	}
	got := NewPipeline(de).Classify("Der Hund läuft schnell über die Straße und bellt.")
	want := []string{"Hund", "läuft", "Straße", "bellt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("German pipeline = %q, want %q", got, want)
	}

	en, err := reg.LoadModel(language.English)
	if err != nil {
		t.Fatalf("English model: %v", err)
	}
	got = NewPipeline(en).Classify("The cat runs quickly to Berlin. Dogs sleep.")
	want = []string{"cat", "runs", "Berlin", "Dogs", "sleep"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("English pipeline = %q, want %q", got, want)
	}
}

func TestShippedModelsMatchNames(t *testing.T) {
	for code, name := range ModelNames {
		data, err := os.ReadFile(filepath.Join("..", "..", "models", name+".yaml"))
		if err != nil {
			t.Fatalf("model for %s: %v", code, err)
		}
		m := mustParseModel(t, string(data))
		if m.Name != name {
			t.Errorf("model file %s declares name %q", name, m.Name)
		}
		if m.Language != string(code) {
			t.Errorf("model %s declares language %q, want %q", name, m.Language, code)
		}
		if m.LexiconSize() == 0 {
			t.Errorf("model %s has an empty lexicon", name)
		}
	}
}
