// Package logger provides structured logging functionality
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for application-wide logging
type Logger struct {
	*slog.Logger
	file *os.File
}

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	File   string // optional log file, duplicated alongside stdout
}

// New creates a new structured logger. When cfg.File is set, log lines
// go to both stdout and the file, appended.
func New(cfg Config) *Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var out io.Writer = os.Stdout
	var file *os.File
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Warn("failed to open log file, logging to stdout only", "file", cfg.File, "error", err)
		} else {
			out = io.MultiWriter(os.Stdout, f)
			file = f
		}
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
		file:   file,
	}
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// WithComponent returns a logger with a component attribute
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.With("component", component),
		file:   l.file,
	}
}

// WithBatch returns a logger with a bulk-load batch attribute
func (l *Logger) WithBatch(batchID string) *Logger {
	return &Logger{
		Logger: l.With("batch_id", batchID),
		file:   l.file,
	}
}

// WithEntity returns a logger with entity context attributes
func (l *Logger) WithEntity(kind, id string) *Logger {
	return &Logger{
		Logger: l.With("entity", kind, "id", id),
		file:   l.file,
	}
}

// Default returns a default logger for quick usage
func Default() *Logger {
	return New(Config{
		Level:  "info",
		Format: "text",
	})
}
