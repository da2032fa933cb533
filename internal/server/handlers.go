package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ironsheep/dada-poem/internal/dada"
	"github.com/ironsheep/dada-poem/internal/language"
	"github.com/ironsheep/dada-poem/internal/ocr"
)

// Error messages shown to clients.
const (
	msgNoFile     = "Keine Datei hochgeladen."
	msgBadLang    = "Ungültige Sprache: "
	msgTooLarge   = "Datei zu groß."
	msgProcessing = "could not process image"
	msgInternal   = "Interner Fehler."
	msgTimeout    = "Zeitüberschreitung bei der Verarbeitung."
)

// maxMemory is how much of a multipart body is held in memory before
// spilling to disk.
const maxMemory = 8 << 20

// multipartOverhead is allowed on top of MaxUploadBytes for boundaries and
// form fields.
const multipartOverhead = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
}

// poemResponse is the JSON form of a generated poem.
type poemResponse struct {
	Language string   `json:"language"`
	Strategy string   `json:"strategy"`
	Lines    []string `json:"lines"`
}

type healthResponse struct {
	Status string       `json:"status"`
	OCR    *ocr.OCRInfo `json:"ocr,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, nil); err != nil {
		s.loggerFrom(r.Context()).WithError(err).Error("failed to render index")
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	log := s.loggerFrom(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		s.writeError(w, r, http.StatusBadRequest, msgNoFile)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil || header.Size == 0 || header.Filename == "" {
		if file != nil {
			file.Close()
		}
		s.writeError(w, r, http.StatusBadRequest, msgNoFile)
		return
	}
	defer file.Close()

	if header.Size > s.cfg.MaxUploadBytes {
		s.writeError(w, r, http.StatusRequestEntityTooLarge, msgTooLarge)
		return
	}

	var override language.Code
	if raw := r.FormValue("lang"); raw != "" {
		code, err := language.Parse(raw)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, msgBadLang+raw)
			return
		}
		override = code
	}

	res, err := s.gen.GenerateFromUpload(r.Context(), file, filepath.Ext(header.Filename), override)
	if err != nil {
		if errors.Is(err, ocr.ErrProcessing) {
			log.WithError(err).Warn("image could not be processed")
			s.writeError(w, r, http.StatusUnprocessableEntity, msgProcessing)
			return
		}
		log.WithError(err).Error("poem generation failed")
		s.writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	var lines []string
	switch res.Outcome {
	case dada.OutcomeNoText:
		s.writeError(w, r, http.StatusBadRequest, dada.NoTextMessage)
		return
	case dada.OutcomeNoWords:
		lines = noWordsLines(s.cfg.Lines)
	default:
		lines = res.Lines
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, poemResponse{
			Language: res.Language.String(),
			Strategy: res.Strategy,
			Lines:    lines,
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := poemTmpl.Execute(w, poemPage{Lines: lines}); err != nil {
		log.WithError(err).Error("failed to render poem")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	status := http.StatusOK
	if s.ocrInfo != nil {
		info := s.ocrInfo()
		resp.OCR = &info
		if !info.Available {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, status, resp)
}

// noWordsLines fills a poem with the no-words notice.
func noWordsLines(n int) []string {
	lines := make([]string, max(n, 1))
	for i := range lines {
		lines[i] = dada.NoWordsLine
	}
	return lines
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.loggerFrom(r.Context()).WithField("status", status).Debug(msg)
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
