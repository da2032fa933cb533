package wordclass

import (
	"regexp"
	"unicode"
)

// wordRun matches a maximal run of word characters: letters, digits and
// underscore, in any script.
var wordRun = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// wordTokens returns the word-character runs of text in order.
func wordTokens(text string) []string {
	return wordRun.FindAllString(text, -1)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// rawToken is a piece of text before tagging.
type rawToken struct {
	text          string
	sentenceStart bool
}

// splitTokens breaks text into word runs (letters and digits) and single
// punctuation runes. Whitespace separates tokens and is dropped. A token is
// marked sentenceStart when it is the first token or follows . ! or ?.
func splitTokens(text string) []rawToken {
	var (
		tokens []rawToken
		word   []rune
		start  = true
	)

	flush := func() {
		if len(word) == 0 {
			return
		}
		tokens = append(tokens, rawToken{text: string(word), sentenceStart: start})
		word = word[:0]
		start = false
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r):
			word = append(word, r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, rawToken{text: string(r), sentenceStart: start})
			start = r == '.' || r == '!' || r == '?'
		}
	}
	flush()
	return tokens
}
