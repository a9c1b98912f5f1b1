package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(h)

	logger.Info("fetching PKGBUILD", "package", "firefox")

	output := buf.String()
	if !strings.Contains(output, "fetching PKGBUILD") {
		t.Errorf("expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "package=firefox") {
		t.Errorf("expected output to contain package=firefox, got: %s", output)
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger)
		contains string
	}{
		{"Debug", func(l Logger) { l.Debug("debug msg") }, "debug msg"},
		{"Info", func(l Logger) { l.Info("info msg") }, "info msg"},
		{"Warn", func(l Logger) { l.Warn("warn msg") }, "warn msg"},
		{"Error", func(l Logger) { l.Error("error msg") }, "error msg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			logger := New(h)

			tt.logFunc(logger)

			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got: %s", tt.contains, output)
			}
		})
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(h).With("component", "gate")

	logger.Info("starting")

	output := buf.String()
	if !strings.Contains(output, "component=gate") {
		t.Errorf("expected output to contain component=gate, got: %s", output)
	}
}

func TestNoopLogger(t *testing.T) {
	// Must not panic, must accept With chains.
	l := NewNoop()
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
	l.With("k", "v").Info("e")
}

func TestDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	SetDefault(New(h))

	Default().Info("configured")

	if !strings.Contains(buf.String(), "configured") {
		t.Errorf("expected default logger output, got: %s", buf.String())
	}
}
