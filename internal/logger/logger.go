// Package logger writes leveled log records to a file. The TUI owns the
// terminal, so nothing is ever logged to stdout or stderr.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LevelNone disables logging.
const LevelNone = slog.Level(12)

// ParseLevel parses a level name. An empty name means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "none":
		return LevelNone, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Logger is a file-backed slog logger.
type Logger struct {
	file *os.File
	log  *slog.Logger
}

// New opens path for appending and logs records at or above level. An empty
// path or LevelNone returns a logger that discards everything.
func New(level slog.Level, path string) (*Logger, error) {
	if level >= LevelNone || path == "" {
		return &Logger{log: slog.New(slog.DiscardHandler)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	h := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	return &Logger{file: file, log: slog.New(h)}, nil
}

// Slog returns the underlying structured logger.
func (l *Logger) Slog() *slog.Logger {
	return l.log
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
