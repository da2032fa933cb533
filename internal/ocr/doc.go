// Package ocr extracts text from screenshots using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2). It is the
// only part of the pipeline that talks to native code.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng tesseract-ocr-deu
//   - macOS: brew install tesseract tesseract-lang
//
// A custom traineddata directory can be selected with Options.TessdataPrefix.
//
// # Languages
//
// Recognition uses the languages in Options.Languages (default "eng").
// Tesseract language codes differ from the two-letter codes used elsewhere
// in this module: "deu" is German, "eng" is English. Recognizing with
// "deu+eng" keeps umlauts, which language detection relies on.
//
// # Error Handling
//
// Every failure wraps ErrProcessing, whose message ("could not process
// image") is safe to show to users. Nothing is retried. Empty text is a
// successful result; deciding what to do with it is the caller's job.
package ocr
