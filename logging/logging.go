// Package logging configures dual console/file logging for CLI tools.
// The file handler always records at DEBUG level; the console handler
// respects the verbose/quiet flags.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type (
	Options struct {
		// Console defaults to os.Stderr.
		Console io.Writer
		// LogFile is auto-generated under ./logs when empty.
		LogFile string
		Verbose bool
		Quiet   bool
	}

	lineHandler struct {
		mux   *sync.Mutex
		dest  io.Writer
		attrs []slog.Attr
		level slog.Level
	}

	teeHandler struct {
		handlers []slog.Handler
	}
)

const timestampLayout = "2006-01-02 15:04:05"

func newLineHandler(dest io.Writer, level slog.Level) *lineHandler {
	return &lineHandler{mux: &sync.Mutex{}, dest: dest, level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Format: [TIMESTAMP] [LEVEL] message key=value ...
func (h *lineHandler) Handle(_ context.Context, record slog.Record) error {
	h.mux.Lock()
	defer h.mux.Unlock()

	_, err := fmt.Fprintf(h.dest, "%s [%s] %s", record.Time.Format(timestampLayout), record.Level, record.Message)
	if err != nil {
		return err
	}

	for _, attr := range h.attrs {
		if _, err = fmt.Fprintf(h.dest, " %s=%v", attr.Key, attr.Value); err != nil {
			return err
		}
	}

	record.Attrs(func(attr slog.Attr) bool {
		if _, err = fmt.Fprintf(h.dest, " %s=%v", attr.Key, attr.Value); err != nil {
			return false
		}

		return true
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(h.dest, "\n")

	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

func (h *lineHandler) WithGroup(string) slog.Handler {
	return h
}

func (h teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (h teeHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		if err := handler.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}

	return nil
}

func (h teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))

	for i := range h.handlers {
		handlers[i] = h.handlers[i].WithAttrs(attrs)
	}

	return teeHandler{handlers: handlers}
}

func (h teeHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))

	for i := range h.handlers {
		handlers[i] = h.handlers[i].WithGroup(name)
	}

	return teeHandler{handlers: handlers}
}

func consoleLevel(opts Options) slog.Level {
	switch {
	case opts.Quiet:
		return slog.LevelError
	case opts.Verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// DefaultLogFile returns the auto-generated log file path used when
// Options.LogFile is empty.
func DefaultLogFile(now time.Time) string {
	return filepath.Join("logs", fmt.Sprintf("process_%s.log", now.Format("20060102_150405")))
}

// Setup returns a logger writing to both the console and a log file. The
// returned closer flushes and closes the log file.
func Setup(opts Options) (logger *slog.Logger, closer func() error, err error) {
	if opts.Console == nil {
		opts.Console = os.Stderr
	}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = DefaultLogFile(time.Now())
	}

	if err = os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory for %q: %w", logFile, err)
	}

	fd, err := os.OpenFile(filepath.Clean(logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %q: %w", logFile, err)
	}

	handler := teeHandler{handlers: []slog.Handler{
		newLineHandler(opts.Console, consoleLevel(opts)),
		newLineHandler(fd, slog.LevelDebug),
	}}

	return slog.New(handler), fd.Close, nil
}
