package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/chatstamp/pkg/i18n"
)

const (
	// HeaderRequestID carries the request ID in both directions.
	HeaderRequestID = "X-Request-ID"
	// DefaultStackSize is the maximum stack trace size logged on panic.
	DefaultStackSize = 4096

	maxRequestIDLength = 128
)

// requestIDHeaders are checked in order for an incoming ID.
var requestIDHeaders = []string{HeaderRequestID, "X-Correlation-ID"}

// requestID reuses a caller supplied ID or generates a new one and echoes it
// back in the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		for _, h := range requestIDHeaders {
			if v := strings.TrimSpace(r.Header.Get(h)); v != "" && len(v) <= maxRequestIDLength {
				id = v
				break
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

// requestLogger logs one record per request once the handler returns.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newStatusWriter(w)
		next.ServeHTTP(sw, r)

		level := slog.LevelInfo
		switch {
		case sw.Status() >= http.StatusInternalServerError:
			level = slog.LevelError
		case sw.Status() >= http.StatusBadRequest:
			level = slog.LevelDebug
		case strings.HasPrefix(r.URL.Path, "/health/"):
			level = slog.LevelDebug
		}

		s.logger.LogAttrs(r.Context(), level, "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sw.Status()),
			slog.Int64("bytes", sw.Size()),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", r.RemoteAddr),
		)
	})
}

// recoverer turns a panic into a 500 response and logs it with a stack trace.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			stack := make([]byte, DefaultStackSize)
			stack = stack[:runtime.Stack(stack, false)]
			s.logger.ErrorContext(r.Context(), "panic recovered",
				slog.Any("panic", rec),
				slog.String("stack", string(stack)),
			)

			if sw, ok := w.(*statusWriter); ok && sw.written {
				return
			}
			s.writeError(w, r, &HTTPError{
				Code:      http.StatusInternalServerError,
				ErrorCode: CodeInternal,
				Message:   http.StatusText(http.StatusInternalServerError),
				Err:       fmt.Errorf("panic: %v", rec),
			})
		}()
		next.ServeHTTP(w, r)
	})
}

// negotiateLocale picks the response locale from the lang query parameter,
// then Accept-Language, then the fallback locale. It also records the
// rendering zone: the tz query parameter or the configured zone.
func (s *Server) negotiateLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := s.fallback
		if q := r.URL.Query().Get("lang"); q != "" {
			if match, ok := i18n.Match(q, s.languages); ok {
				lang = match
			}
		} else if header := r.Header.Get("Accept-Language"); header != "" {
			// languages starts with the fallback, which is what no match returns.
			lang = i18n.ParseAcceptLanguage(header, s.languages)
		}

		w.Header().Add("Vary", "Accept-Language")
		w.Header().Set("Content-Language", lang)
		tz := s.cfg.Timezone
		if q := r.URL.Query().Get("tz"); q != "" {
			tz = q
		}

		ctx := withTimezone(withLocale(r.Context(), lang), tz)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
