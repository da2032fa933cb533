package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/dada-poem/internal/config"
	"github.com/ironsheep/dada-poem/internal/dada"
	"github.com/ironsheep/dada-poem/internal/language"
	"github.com/ironsheep/dada-poem/internal/ocr"
)

// shutdownTimeout bounds graceful shutdown after the run context ends.
const shutdownTimeout = 10 * time.Second

// Generator produces a poem from an uploaded image.
type Generator interface {
	GenerateFromUpload(ctx context.Context, r io.Reader, suffix string, override language.Code) (*dada.Result, error)
}

// Server serves the upload form and the generate endpoint.
type Server struct {
	cfg     *config.Config
	gen     Generator
	log     logrus.FieldLogger
	ocrInfo func() ocr.OCRInfo
}

// Option customizes a Server.
type Option func(*Server)

// WithOCRInfo reports OCR status on /healthz.
func WithOCRInfo(fn func() ocr.OCRInfo) Option {
	return func(s *Server) { s.ocrInfo = fn }
}

// New creates a server. A nil cfg uses config.Default.
func New(cfg *config.Config, gen Generator, log logrus.FieldLogger, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{cfg: cfg, gen: gen, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with CORS, request IDs, logging and the
// per-request timeout applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	var h http.Handler = mux
	if s.cfg.RequestTimeout > 0 {
		h = jsonTimeout(h, s.cfg.RequestTimeout)
	}
	h = s.requestID(h)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(h)
}

// jsonTimeout is http.TimeoutHandler answering with the JSON error envelope.
// TimeoutHandler writes its body without a Content-Type, so the header is
// set up front; handlers that finish in time overwrite it with their own.
func jsonTimeout(h http.Handler, d time.Duration) http.Handler {
	th := http.TimeoutHandler(h, d, `{"error":"`+msgTimeout+`"}`+"\n")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		th.ServeHTTP(w, r)
	})
}

// Run listens on the configured address until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.WithField("addr", ln.Addr().String()).Info("listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}
