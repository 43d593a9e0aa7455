package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the output encoding of a logger.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config selects the handler, the minimum level and the destination.
type Config struct {
	Level  slog.Level
	Format Format
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New creates a logger writing to cfg.Output with optional context extractors.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(cfg), extractors...))
}

func newHandler(cfg Config) slog.Handler {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == FormatText {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}

// ParseLevel parses "debug", "info", "warn" or "error", with optional
// offsets such as "warn+2".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}

// ParseFormat parses "json" or "text". The empty string is JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}
