// Package logging builds the structured logger used for diagnostics on stderr.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// redacted replaces the value of sensitive attributes.
const redacted = "[redacted]"

// sensitiveKeys are attribute keys whose values never reach the log.
var sensitiveKeys = map[string]bool{
	"token":         true,
	"authorization": true,
}

// New creates a text logger writing to w at the given minimum level.
// A nil writer yields a logger that discards everything.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redact,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}

// ParseLevel parses a log level string into slog.Level.
// Unknown values map to warn.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if sensitiveKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, redacted)
	}
	return a
}
