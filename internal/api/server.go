// Package api exposes the braidkit analyses over HTTP.
//
// The API is a thin JSON layer over the pipeline runner: every endpoint
// decodes a pipeline.Options, forces the operation to match the route, and
// returns the pipeline.Result verbatim. Caching, validation and warnings
// all behave exactly as they do in the CLI.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/topodyn/braidkit/pkg/errors"
	"github.com/topodyn/braidkit/pkg/observability"
	"github.com/topodyn/braidkit/pkg/pipeline"
)

// maxBodyBytes caps request bodies; analysis requests are small.
const maxBodyBytes = 1 << 20

// Server serves the analysis API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server around a runner. A nil logger falls back to
// the default logger.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/act", s.handleAnalysis(pipeline.OpAct))
		r.Post("/eq", s.handleAnalysis(pipeline.OpEq))
		r.Post("/entropy", s.handleAnalysis(pipeline.OpEntropy))
		r.Post("/complexity", s.handleAnalysis(pipeline.OpComplexity))
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalysis returns a handler that runs one analysis operation. The
// operation comes from the route, not the body; a mismatching "op" field in
// the request is overwritten rather than rejected.
func (s *Server) handleAnalysis(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opts pipeline.Options
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(body).Decode(&opts); err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "malformed request body: %v", err))
			return
		}
		opts.Op = op
		opts.Logger = s.logger

		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// observe emits the API hooks around every request.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)
		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed)
	})
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// writeError maps the error taxonomy onto HTTP statuses. Validation
// problems are the client's fault; arithmetic overflow means the request
// was well-formed but the chosen representation could not carry it.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidWord, errors.ErrCodeInvalidTimes,
		errors.ErrCodeInvalidLoop, errors.ErrCodeInvalidBackend, errors.ErrCodeInvalidBasis,
		errors.ErrCodeInvalidMeasure, errors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case errors.ErrCodeOverflow:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorBody{Error: errors.UserMessage(err), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
