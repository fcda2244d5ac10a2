// Package server exposes verification over HTTP.
//
// A client posts the raw CSV as the request body to /verify/{filename}. The
// filename selects the rule-set variant and supplies the state and county,
// exactly as it does on the command line. The response is the same text
// report the CLI prints.
package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/election-results-verifier/internal/config"
	"github.com/ginjaninja78/election-results-verifier/internal/csvparser"
	"github.com/ginjaninja78/election-results-verifier/internal/report"
	"github.com/ginjaninja78/election-results-verifier/internal/types"
	"github.com/ginjaninja78/election-results-verifier/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP verification service.
type Server struct {
	cfg    config.ServerConfig
	opts   validation.Options
	logger *slog.Logger
	router *chi.Mux
	server *http.Server
}

// New creates a Server with its routes installed.
func New(cfg config.ServerConfig, opts validation.Options, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		opts:   opts,
		logger: logger,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.RequestTimeout))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/verify/{filename}", s.handleVerify)
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("server listening", "addr", s.cfg.Addr)

	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// =============================================================================
// HANDLERS
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// handleVerify verifies the request body as the named results file.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(chi.URLParam(r, "filename"))
	logger := s.logger.With("request_id", middleware.GetReqID(r.Context()), "filename", filename)

	if filepath.Ext(filename) != ".csv" {
		http.Error(w, "filename does not end in .csv", http.StatusBadRequest)
		return
	}

	var out bytes.Buffer
	text := report.NewText(&out)

	verifier, err := validation.New(filename, text, s.opts)
	switch {
	case errors.Is(err, validation.ErrUnrecognizedFile), errors.Is(err, validation.ErrMatrixFile):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	parser, err := csvparser.NewStreamingParser(body)
	if err != nil {
		s.writeReadError(w, err)
		return
	}

	text.BeginFile(filename)

	result, err := verifier.Verify(parser)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeReadError(w, err)
			return
		}
		text.Report(types.Finding{Message: err.Error()})
	}

	logger.Info("verified upload",
		"variant", result.Variant,
		"rows", result.Rows,
		"findings", result.Findings,
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(out.Bytes())
}

// writeReadError maps body read failures to a status code.
func (s *Server) writeReadError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}
