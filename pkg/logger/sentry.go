package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
	// MinLevel selects what Sentry stores as logs: slog.LevelWarn keeps
	// warnings and errors, slog.LevelError keeps errors only.
	// Errors always become Sentry issues.
	MinLevel slog.Level
}

// flushTimeout bounds how long Flush waits for buffered Sentry events.
const flushTimeout = 2 * time.Second

// NewWithSentry creates a logger that writes to cfg.Output and to Sentry.
// With an empty DSN only the local handler is used.
// The returned flush func must be called before the process exits.
func NewWithSentry(cfg Config, sc SentryConfig, extractors ...ContextExtractor) (*slog.Logger, func()) {
	local := newHandler(cfg)
	noFlush := func() {}

	if sc.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local, extractors...)), noFlush
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: sc.Environment,
		Release:     sc.Release,
		EnableLogs:  true,
	}); err != nil {
		// Keep logging locally when Sentry cannot start.
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, extractors...)), noFlush
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sc.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	log := slog.New(NewLogHandlerDecorator(newMultiHandler(local, remote), extractors...))
	return log, func() { sentry.Flush(flushTimeout) }
}
