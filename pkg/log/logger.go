// Package log wraps slog with a component field so every subsystem tags its
// records consistently. The TUI owns the terminal, so by default records go to
// the file named by LEDGER_LOG, or nowhere.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component tag.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler), component: ComponentApp}
}

// Default returns a logger honoring the LEDGER_LOG and LEDGER_LOG_LEVEL
// environment variables. Without LEDGER_LOG it discards everything.
func Default() *Logger {
	path := os.Getenv("LEDGER_LOG")
	if path == "" {
		return Discard()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Discard()
	}
	level := slog.LevelInfo
	if os.Getenv("LEDGER_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return New(f, level)
}

// Discard returns a logger that drops all records.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError)
}

// WithComponent returns a logger tagged with a specific component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// With returns a logger with extra attributes attached.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), component: l.component}
}
