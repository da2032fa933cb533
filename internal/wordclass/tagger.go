package wordclass

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tag is a coarse, universal part-of-speech category.
type Tag string

const (
	NOUN  Tag = "NOUN"
	PROPN Tag = "PROPN"
	VERB  Tag = "VERB"
	AUX   Tag = "AUX"
	ADJ   Tag = "ADJ"
	ADV   Tag = "ADV"
	ADP   Tag = "ADP"
	CONJ  Tag = "CONJ"
	DET   Tag = "DET"
	PRON  Tag = "PRON"
	PART  Tag = "PART"
	NUM   Tag = "NUM"
	PUNCT Tag = "PUNCT"
	X     Tag = "X"
)

// tagPriority resolves word forms listed under several tags in a model's
// lexicon: the earlier tag wins.
var tagPriority = []Tag{AUX, VERB, NOUN, PROPN, DET, PRON, ADP, CONJ, PART, ADV, ADJ, NUM, PUNCT, X}

var knownTags = func() map[Tag]bool {
	m := make(map[Tag]bool, len(tagPriority))
	for _, t := range tagPriority {
		m[t] = true
	}
	return m
}()

// Token is one tagged unit of text.
type Token struct {
	Text  string
	Tag   Tag
	Alpha bool
}

// Tagger assigns part-of-speech tags to the tokens of a text.
type Tagger interface {
	Tag(text string) []Token
}

// SuffixRule tags an unknown word by its ending.
type SuffixRule struct {
	Suffix  string
	Tag     Tag
	MinStem int
}

// Model is a lexicon-and-rules tagger for one language.
//
// Lookup order for an alphabetic token: lexicon (by lowercase form), then the
// capitalization rule, then suffix rules in file order, then Default.
type Model struct {
	Name     string
	Language string

	// Capitalized is the tag for words starting with an uppercase letter.
	// Empty disables the rule.
	Capitalized Tag
	// CapitalizedAtSentenceStart applies Capitalized to sentence-initial
	// words too. German capitalizes nouns everywhere; English only
	// capitalizes proper nouns mid-sentence.
	CapitalizedAtSentenceStart bool
	Default                    Tag

	lexicon  map[string]Tag
	suffixes []SuffixRule
}

// Tag tokenizes text and tags every token.
func (m *Model) Tag(text string) []Token {
	raw := splitTokens(text)
	tokens := make([]Token, 0, len(raw))
	for _, rt := range raw {
		tokens = append(tokens, Token{
			Text:  rt.text,
			Tag:   m.tagOne(rt),
			Alpha: isAlpha(rt.text),
		})
	}
	return tokens
}

// LexiconSize reports how many word forms the model knows.
func (m *Model) LexiconSize() int { return len(m.lexicon) }

func (m *Model) tagOne(rt rawToken) Tag {
	text := rt.text
	if !isAlpha(text) {
		if isNumeric(text) {
			return NUM
		}
		if r, size := utf8.DecodeRuneInString(text); size == len(text) && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return PUNCT
		}
		return X
	}

	lower := strings.ToLower(text)
	if tag, ok := m.lexicon[lower]; ok {
		return tag
	}

	first, _ := utf8.DecodeRuneInString(text)
	if m.Capitalized != "" && unicode.IsUpper(first) && (!rt.sentenceStart || m.CapitalizedAtSentenceStart) {
		return m.Capitalized
	}

	n := utf8.RuneCountInString(lower)
	for _, rule := range m.suffixes {
		if strings.HasSuffix(lower, rule.Suffix) && n-utf8.RuneCountInString(rule.Suffix) >= rule.MinStem {
			return rule.Tag
		}
	}

	return m.Default
}
