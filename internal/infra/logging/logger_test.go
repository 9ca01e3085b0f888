package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelWarn}, // default
		{"", slog.LevelWarn},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	// Setup
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	// Execute
	logger.Debug("request", "url", "https://example.com")
	logger.Warn("unknown key in [display]: colour")

	// Assert
	out := buf.String()
	assert.NotContains(t, out, "request")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "unknown key in [display]: colour")
}

func TestNew_RedactsToken(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug)

	logger.Debug("auth", "login", "alice", "token", "s3cr3t")

	assert.NotContains(t, buf.String(), "s3cr3t")
	assert.Contains(t, buf.String(), "token="+redacted)
	assert.Contains(t, buf.String(), "login=alice")
}

func TestNew_NilWriter(t *testing.T) {
	logger := New(nil, slog.LevelDebug)

	assert.NotPanics(t, func() { logger.Error("dropped") })
}
