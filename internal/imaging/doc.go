// Package imaging decodes screenshots and prepares them for OCR.
//
// # Formats
//
// Decode and Load accept PNG, JPEG and GIF from the standard library and BMP,
// TIFF and WebP from golang.org/x/image. Anything else, including empty or
// truncated uploads, fails with ErrUndecodable so callers can report
// "could not process image" without inspecting decoder internals.
//
// # OCR Preparation
//
// Screenshots are often small, colored and in dark mode, all of which hurt
// Tesseract accuracy. PrepareForOCR normalizes them:
//   - trim blank margins (ContentBounds, a gradient edge pass)
//   - upscale (disintegration/imaging, Lanczos)
//   - grayscale
//   - invert when the average CIE L* lightness (lucasb-eyer/go-colorful) is
//     below a threshold
//   - contrast and sharpen (anthonynsimon/bild)
//
// All operations return new images; inputs are never modified.
package imaging
