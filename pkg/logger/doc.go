// Package logger builds log/slog loggers with context extractors and optional
// Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{
//		Level:  slog.LevelInfo,
//		Format: logger.FormatJSON,
//	}, logger.StringExtractor("request_id", server.RequestID))
//
//	log.InfoContext(ctx, "stamp rendered", slog.String("policy", "message_list"))
//	// {"level":"INFO","msg":"stamp rendered","policy":"message_list","request_id":"..."}
//
// Level and format usually come from configuration strings; ParseLevel and
// ParseFormat convert them.
//
// # Context Extractors
//
// A ContextExtractor runs on every record, so request-scoped values such as
// the request ID, the negotiated locale or the time zone are always current.
// LogHandlerDecorator applies them to any slog.Handler.
//
// # Sentry
//
// NewWithSentry sends errors to Sentry as issues and keeps warnings as Sentry
// logs, alongside the local handler. Without a DSN it returns a plain local
// logger, so development and production share one code path:
//
//	log, flush := logger.NewWithSentry(cfg, logger.SentryConfig{DSN: dsn, Environment: "production"})
//	defer flush()
package logger
