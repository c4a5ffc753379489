// Package output provides console and file logging plus terminal styling
// for the gitkit CLI.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures the rotating log file. An empty Path disables it.
type FileOptions struct {
	Path       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// consoleHandler writes messages without timestamps or level prefixes.
// Attributes are only printed in debug mode.
type consoleHandler struct {
	writer    io.Writer
	debugMode bool
	attrs     []slog.Attr
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	msg := record.Message
	if h.debugMode {
		var b strings.Builder
		b.WriteString(msg)
		write := func(a slog.Attr) bool {
			fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
			return true
		}
		for _, a := range h.attrs {
			write(a)
		}
		record.Attrs(write)
		msg = b.String()
	}
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		writer:    h.writer,
		debugMode: h.debugMode,
		attrs:     append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

func newRotatingWriter(opts FileOptions) *lumberjack.Logger {
	l := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
	}
	if opts.MaxSize > 0 {
		l.MaxSize = opts.MaxSize
	}
	if opts.MaxBackups > 0 {
		l.MaxBackups = opts.MaxBackups
	}
	if opts.MaxAge > 0 {
		l.MaxAge = opts.MaxAge
	}
	return l
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and user-facing output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	errWriter io.Writer
	logWriter io.WriteCloser
}

// NewSplog creates a console-only Splog on stdout/stderr. Debug messages are
// enabled when the DEBUG environment variable is set.
func NewSplog() *Splog {
	splog, _ := NewSplogWithConfig(os.Stdout, os.Stderr, os.Getenv("DEBUG") != "", FileOptions{})
	return splog
}

// NewSplogWithConfig creates a Splog writing data to out, diagnostics to
// errOut and, when file.Path is set, everything including debug records to
// a rotating log file.
func NewSplogWithConfig(out, errOut io.Writer, debug bool, file FileOptions) (*Splog, error) {
	splog := &Splog{writer: out, errWriter: errOut}

	handlers := []slog.Handler{&consoleHandler{writer: errOut, debugMode: debug}}

	if file.Path != "" {
		if err := os.MkdirAll(filepath.Dir(file.Path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotating := newRotatingWriter(file)
		splog.logWriter = rotating

		handlers = append(handlers, slog.NewTextHandler(rotating, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		}))
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// Logger exposes the underlying slog logger for library code.
func (s *Splog) Logger() *slog.Logger {
	return s.logger
}

// Writer returns the data stream.
func (s *Splog) Writer() io.Writer {
	return s.writer
}

func (s *Splog) logMessage(level slog.Level, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg)
}

// Print writes command data to the output stream, not the log.
func (s *Splog) Print(format string, args ...any) {
	if len(args) == 0 {
		_, _ = fmt.Fprint(s.writer, format)
		return
	}
	_, _ = fmt.Fprintf(s.writer, format, args...)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...any) {
	s.logMessage(slog.LevelInfo, format, args...)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...any) {
	s.logMessage(slog.LevelWarn, "warning: "+format, args...)
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...any) {
	s.logMessage(slog.LevelError, ColorRed("error:")+" "+format, args...)
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...any) {
	s.logMessage(slog.LevelDebug, format, args...)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
