package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/chatstamp/internal/config"
	"github.com/dmitrymomot/chatstamp/pkg/health"
	"github.com/dmitrymomot/chatstamp/pkg/logger"
	"github.com/dmitrymomot/chatstamp/pkg/timefmt"
)

// Server exposes a Formatter over HTTP.
type Server struct {
	cfg       *config.Config
	formatter *timefmt.Formatter
	logger    *slog.Logger
	// languages starts with fallback; the rest keep their given order.
	languages []string
	fallback  string
	router    chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request and error records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLanguages sets the locales Accept-Language is negotiated against.
// Default: the formatter localizer's languages, when it lists them. The
// fallback locale is always included.
func WithLanguages(langs ...string) Option {
	return func(s *Server) {
		s.languages = append([]string{}, langs...)
	}
}

// New builds a Server around f, with defaults and limits taken from cfg.
func New(cfg *config.Config, f *timefmt.Formatter, opts ...Option) *Server {
	s := &Server{
		cfg:       cfg,
		formatter: f,
		logger:    logger.NewNope(),
		fallback:  f.FallbackLocale(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.languages == nil {
		if l, ok := f.Localizer().(interface{ Languages() []string }); ok {
			s.languages = l.Languages()
		}
	}
	langs := []string{s.fallback}
	for _, l := range s.languages {
		if !slices.Contains(langs, l) {
			langs = append(langs, l)
		}
	}
	s.languages = langs

	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		chimw.CleanPath,
		requestID,
		cors(s.cfg.Server.CORSOrigins),
		s.negotiateLocale,
		s.requestLogger,
		s.recoverer,
	)

	r.NotFound(s.handle(func(http.ResponseWriter, *http.Request) error {
		return NewHTTPError(http.StatusNotFound, CodeNotFound, "route not found")
	}))
	r.MethodNotAllowed(s.handle(func(http.ResponseWriter, *http.Request) error {
		return NewHTTPError(http.StatusMethodNotAllowed, CodeNotFound, "method not allowed")
	}))

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(s.readinessChecks(), health.WithLogger(s.logger)))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/stamp", s.handle(s.handleStamp))
		r.Post("/stamps", s.handle(s.handleStamps))
		r.Get("/stamp.html", s.handle(s.handleStampHTML))
		r.Post("/shorten", s.handle(s.handleShorten))
		r.Get("/elapsed", s.handle(s.handleElapsed))
		r.Get("/day", s.handle(s.handleDay))
		r.Get("/locales", s.handle(s.handleLocales))
	})

	return r
}

// handle adapts an error-returning handler. Client errors are logged at
// debug, everything else at error.
func (s *Server) handle(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				httpErr = formatterError(err)
			}
			s.writeError(w, r, httpErr)
		}
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, e *HTTPError) {
	attrs := []slog.Attr{
		slog.Int("status", e.Code),
		slog.String("code", e.ErrorCode),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	level := slog.LevelDebug
	if e.Code >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.LogAttrs(r.Context(), level, "request failed", attrs...)

	writeJSON(w, e.Code, errorBody{
		Error:     e.Message,
		Code:      e.ErrorCode,
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
