// Package preview serves the documentation page with live callbacks.
package preview

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/componentdocs/internal/app"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/logfields"
	"git.home.luguber.info/inful/componentdocs/internal/metrics"
	"git.home.luguber.info/inful/componentdocs/internal/pages/spinner"
	"git.home.luguber.info/inful/componentdocs/internal/server/middleware"
	"git.home.luguber.info/inful/componentdocs/internal/site"
)

const maxCallbackBody = 1 << 20

// ServerOption configures optional Server behavior.
type ServerOption func(*Server)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) ServerOption {
	return func(s *Server) { s.recorder = r }
}

// WithRegistry exposes reg on /metrics.
func WithRegistry(reg *prom.Registry) ServerOption {
	return func(s *Server) { s.registry = reg }
}

// WithLogger sets the logger used for request and error logging.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = l }
}

// Server holds the chi router, the site and the app handle its callbacks are registered on.
type Server struct {
	router   chi.Router
	site     *site.Site
	app      *app.App
	recorder metrics.Recorder
	registry *prom.Registry
	logger   *slog.Logger
	errs     *errors.HTTPErrorAdapter
}

// NewServer creates a Server with all routes configured. The page is
// assembled once up front so that broken sources or metadata fail here
// rather than on the first request.
func NewServer(st *site.Site, opts ...ServerOption) (*Server, error) {
	s := &Server{
		site:     st,
		app:      app.New(spinner.Name),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.recorder == nil {
		s.recorder = metrics.NoopRecorder{}
	}
	s.errs = errors.NewHTTPErrorAdapter(s.logger)

	if _, err := st.Content(s.app); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Chain(s.logger, s.errs))

	r.Get("/", s.handlePage)
	r.Get("/"+spinner.Name, s.handlePage)
	r.Get("/_dash-dependencies", s.handleDependencies)
	r.Post("/_dash-update-component", s.handleUpdate)
	r.Get("/healthz", s.handleHealth)
	if s.registry != nil {
		r.Handle("/metrics", metrics.HTTPHandler(s.registry))
	}

	s.router = r
	return s, nil
}

// ServeHTTP implements the http.Handler interface, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// App returns the handle the page's callbacks are registered on.
func (s *Server) App() *app.App { return s.app }

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var buf bytes.Buffer
	err := s.site.Render(&buf, s.app, true)
	s.recorder.ObserveRenderDuration(spinner.Name, time.Since(start))
	s.recorder.IncRenderResult(spinner.Name, metrics.ResultFor(err, false))
	if err != nil {
		s.errs.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleDependencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Dependencies())
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCallbackBody)

	var req app.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errs.WriteErrorResponse(w, r, errors.WrapError(err, errors.CategoryValidation, "invalid callback request").Build())
		return
	}

	resp, err := s.app.Dispatch(r.Context(), req)
	canceled := stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
	s.recorder.IncCallbackResult(req.Output, metrics.ResultFor(err, canceled))
	if err != nil {
		s.logger.Warn("Callback failed", logfields.Callback(req.Output), logfields.Error(err))
		s.errs.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
