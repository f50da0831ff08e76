package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much the service logs.
type Options struct {
	Level      string // debug, info, warn, error
	Dir        string // empty disables the log file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Console    io.Writer
}

// DefaultOptions is used by SetupLogger.
var DefaultOptions = Options{
	Level:      "info",
	Dir:        "logs",
	MaxSizeMB:  50,
	MaxBackups: 10,
	MaxAgeDays: 30,
}

var (
	mu      sync.RWMutex
	current = slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.DateTime}))
	closer  io.Closer
)

// SetupLogger initialises logging with LOG_LEVEL and LOG_DIR from the environment.
func SetupLogger() error {
	opts := DefaultOptions
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		opts.Level = level
	}
	if dir, ok := os.LookupEnv("LOG_DIR"); ok {
		opts.Dir = dir
	}
	return SetupLoggerWithOptions(opts)
}

// SetupLoggerWithOptions writes coloured output to the console and JSON lines to a
// rotating file under opts.Dir.
func SetupLoggerWithOptions(opts Options) error {
	level := ParseLevel(opts.Level)
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	handlers := []slog.Handler{
		tint.NewHandler(console, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
			AddSource:  level == slog.LevelDebug,
		}),
	}

	var fileCloser io.Closer
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, "osintranet.log"),
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			LocalTime:  true,
		}
		handlers = append(handlers, slog.NewJSONHandler(rotating, &slog.HandlerOptions{Level: level}))
		fileCloser = rotating
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
	}
	current = slog.New(fanout(handlers))
	closer = fileCloser
	slog.SetDefault(current)
	return nil
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// ParseLevel maps a level name to a slog level; unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// L returns the structured logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// With returns a structured logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return L().With(args...)
}

// Debug logs at debug level
func Debug(format string, v ...interface{}) {
	L().Debug(fmt.Sprintf(format, v...))
}

// Info logs at info level
func Info(format string, v ...interface{}) {
	L().Info(fmt.Sprintf(format, v...))
}

// Warning logs at warn level
func Warning(format string, v ...interface{}) {
	L().Warn(fmt.Sprintf(format, v...))
}

// Error logs at error level
func Error(format string, v ...interface{}) {
	L().Error(fmt.Sprintf(format, v...))
}

// fanout sends every record to all handlers that accept its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
