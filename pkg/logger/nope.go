package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a logger that discards all output.
// Used as the default in tests and when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
