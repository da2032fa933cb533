// Package language guesses whether OCR text is German or English.
//
// Detection is a character heuristic, not linguistic analysis: any umlauted
// vowel or sharp s marks the text as German, everything else is English.
// It is allowed to be wrong.
package language

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Code is a two-letter language code.
type Code string

const (
	German  Code = "de"
	English Code = "en"
)

// ErrUnsupported is returned by Parse for codes other than de and en.
var ErrUnsupported = errors.New("unsupported language")

// germanChars are the characters that flip detection to German.
const germanChars = "äöüÄÖÜß"

// Detect returns German if text contains any of ä, ö, ü (either case) or ß,
// and English otherwise.
//
// Text is NFC-normalized first so decomposed umlauts (a vowel followed by
// U+0308, as some OCR builds emit) are recognized.
func Detect(text string) Code {
	if strings.ContainsAny(Normalize(text), germanChars) {
		return German
	}
	return English
}

// Normalize returns text in Unicode NFC form.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Parse validates an explicit language override.
func Parse(s string) (Code, error) {
	switch Code(strings.ToLower(strings.TrimSpace(s))) {
	case German:
		return German, nil
	case English:
		return English, nil
	}
	return "", fmt.Errorf("%w: %q (want de or en)", ErrUnsupported, s)
}

// Tesseract returns the Tesseract traineddata name for the code.
func (c Code) Tesseract() string {
	switch c {
	case German:
		return "deu"
	case English:
		return "eng"
	}
	return ""
}

func (c Code) String() string { return string(c) }
