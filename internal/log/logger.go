// Package log provides structured logging for arx.
//
// The Logger interface is backed by Go's stdlib slog. Subsystems accept a
// Logger explicitly (or fall back to the global default), keeping the gate
// workflow testable without touching process-wide state.
//
// Output semantics:
//   - User output (stdout): security reports, prompts, delegation status
//   - Diagnostic logging (stderr): Debug, Info, Warn, Error messages
//
// Verbosity comes from the persisted `verbose` setting: INFO when verbose,
// WARN otherwise.
package log

import (
	"log/slog"
	"sync"
)

// Logger is the interface for structured logging.
// Methods match slog's signature for easy integration.
type Logger interface {
	// Debug logs at DEBUG level. Use for internal state such as resolved
	// helper paths or scratch directory names.
	Debug(msg string, args ...any)

	// Info logs at INFO level. Use for operational context like
	// "fetching PKGBUILD" or "querying classifier".
	Info(msg string, args ...any)

	// Warn logs at WARN level. Use for recoverable issues like a scratch
	// directory that could not be removed.
	Warn(msg string, args ...any)

	// Error logs at ERROR level. Use for failures that prevent the gate
	// from completing.
	Error(msg string, args ...any)

	// With returns a Logger that includes the given key-value pairs in
	// all subsequent log entries.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New creates a Logger backed by slog with the given handler.
func New(h slog.Handler) Logger {
	return &slogLogger{l: slog.New(h)}
}

func (s *slogLogger) Debug(msg string, args ...any) {
	s.l.Debug(msg, args...)
}

func (s *slogLogger) Info(msg string, args ...any) {
	s.l.Info(msg, args...)
}

func (s *slogLogger) Warn(msg string, args ...any) {
	s.l.Warn(msg, args...)
}

func (s *slogLogger) Error(msg string, args ...any) {
	s.l.Error(msg, args...)
}

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

// noopLogger discards all log output.
type noopLogger struct{}

// NewNoop returns a logger that discards all output.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) With(...any) Logger   { return noopLogger{} }

var (
	defaultLogger Logger = noopLogger{}
	defaultMu     sync.RWMutex
)

// Default returns the global logger configured at startup.
// Returns a noop logger if SetDefault has not been called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the global logger. Called once in main() after the
// verbosity setting is known.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
