// Package server is the web front end of the poem generator.
//
// # Routes
//
//   - GET /: upload form
//   - POST /generate: multipart upload (field "image", optional "lang") that
//     answers with an HTML poem page, or JSON when the client sends
//     Accept: application/json
//   - GET /healthz: service and OCR status as JSON
//
// # Error Handling
//
// Failures are answered with a JSON envelope, {"error": "<message>"}:
//   - 400: no file, unsupported language, or no text in the image
//   - 413: upload larger than the configured limit
//   - 422: the image could not be decoded or recognized
//   - 503: the request exceeded the configured timeout
//
// An image without nouns or verbs is not an error; the poem page then shows
// a fixed notice on every line.
//
// # Usage
//
//	srv := server.New(cfg, gen, log, server.WithOCRInfo(engine.Info))
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
