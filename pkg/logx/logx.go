package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level is the minimum severity that gets written
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn/warning and error
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Fields are structured key/values attached to an entry
type Fields map[string]any

var (
	mu       sync.RWMutex
	levelVar = new(slog.LevelVar)
	logger   = newLogger(os.Stderr, FormatText)
	exit     = os.Exit
)

func newLogger(w io.Writer, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelVar}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SetLevel changes the global minimum level
func SetLevel(l Level) {
	levelVar.Set(l.slogLevel())
}

// SetOutput replaces the writer and encoding of the global logger
func SetOutput(w io.Writer, format Format) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, format)
}

// Slog returns the underlying logger for libraries that want one
func Slog() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func log(l slog.Level, msg string, attrs ...any) {
	Slog().Log(context.Background(), l, msg, attrs...)
}

func Debug(msg string) {
	log(slog.LevelDebug, msg)
}

func Debugf(format string, args ...any) {
	log(slog.LevelDebug, fmt.Sprintf(format, args...))
}

func Info(msg string) {
	log(slog.LevelInfo, msg)
}

func Infof(format string, args ...any) {
	log(slog.LevelInfo, fmt.Sprintf(format, args...))
}

func Warn(msg string) {
	log(slog.LevelWarn, msg)
}

func Warnf(format string, args ...any) {
	log(slog.LevelWarn, fmt.Sprintf(format, args...))
}

func Error(msg string) {
	log(slog.LevelError, msg)
}

func Errorf(format string, args ...any) {
	log(slog.LevelError, fmt.Sprintf(format, args...))
}

// Fatal logs at error level and exits the process
func Fatal(msg string) {
	log(slog.LevelError, msg)
	exit(1)
}

// Fatalf logs at error level and exits the process
func Fatalf(format string, args ...any) {
	log(slog.LevelError, fmt.Sprintf(format, args...))
	exit(1)
}

// Entry is a logger bound to a set of fields
type Entry struct {
	attrs []any
}

// WithFields returns an entry that writes fields with every record
func WithFields(fields Fields) *Entry {
	attrs := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	return &Entry{attrs: attrs}
}

// WithError is shorthand for WithFields(Fields{"error": err})
func WithError(err error) *Entry {
	return WithFields(Fields{"error": err})
}

// WithFields adds more fields to a copy of the entry
func (e *Entry) WithFields(fields Fields) *Entry {
	attrs := make([]any, len(e.attrs), len(e.attrs)+len(fields)*2)
	copy(attrs, e.attrs)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	return &Entry{attrs: attrs}
}

func (e *Entry) Debug(msg string) {
	log(slog.LevelDebug, msg, e.attrs...)
}

func (e *Entry) Debugf(format string, args ...any) {
	log(slog.LevelDebug, fmt.Sprintf(format, args...), e.attrs...)
}

func (e *Entry) Info(msg string) {
	log(slog.LevelInfo, msg, e.attrs...)
}

func (e *Entry) Infof(format string, args ...any) {
	log(slog.LevelInfo, fmt.Sprintf(format, args...), e.attrs...)
}

func (e *Entry) Warn(msg string) {
	log(slog.LevelWarn, msg, e.attrs...)
}

func (e *Entry) Warnf(format string, args ...any) {
	log(slog.LevelWarn, fmt.Sprintf(format, args...), e.attrs...)
}

func (e *Entry) Error(msg string) {
	log(slog.LevelError, msg, e.attrs...)
}

func (e *Entry) Errorf(format string, args ...any) {
	log(slog.LevelError, fmt.Sprintf(format, args...), e.attrs...)
}
