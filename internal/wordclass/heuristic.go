package wordclass

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// germanVerbEndings are checked against the lowercased token.
var germanVerbEndings = []string{"en", "st", "t", "end"}

// Heuristic approximates noun and verb detection without a model.
type Heuristic struct{}

// NewHeuristic returns the rule-based classifier.
func NewHeuristic() *Heuristic { return &Heuristic{} }

// Name identifies the strategy in logs and API responses.
func (*Heuristic) Name() string { return "heuristic" }

// Classify returns the candidate words of text in document order.
//
// Tokens of one character or consisting only of digits are dropped. The rest
// are kept if, checked in this order, the first character is uppercase
// (noun-like), the lowercased token ends in en, st, t or end (verb-like), or
// the token is alphabetic and longer than three characters.
func (h *Heuristic) Classify(text string) []string {
	var words []string
	for _, tok := range wordTokens(text) {
		if keepHeuristic(tok) {
			words = append(words, tok)
		}
	}
	return words
}

func keepHeuristic(tok string) bool {
	n := utf8.RuneCountInString(tok)
	if n <= 1 || isNumeric(tok) {
		return false
	}

	first, _ := utf8.DecodeRuneInString(tok)
	if unicode.IsUpper(first) {
		return true
	}

	lower := strings.ToLower(tok)
	for _, suffix := range germanVerbEndings {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}

	return isAlpha(tok) && n > 3
}
