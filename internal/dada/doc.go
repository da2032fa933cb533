// Package dada turns a screenshot into a Dada poem.
//
// A Generator runs the full pipeline: OCR, language detection, word
// classification and poem assembly. The absence of text or of usable words
// is reported as an Outcome, not as an error; errors are reserved for images
// that could not be read or recognized.
package dada
