package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects log level and optional sinks.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	File   FileConfig
	Sentry SentryConfig
}

// FileConfig enables a size-rotated JSON log file next to stdout.
type FileConfig struct {
	Path       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"LOG_FILE_MAX_AGE_DAYS" envDefault:"28"`
}

// New creates a JSON stdout logger at info level.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(WithExtractors(h, extractors...))
}

// NewFromConfig builds a logger writing JSON to stdout, plus the rotating
// file and Sentry when configured. The returned close func flushes and
// releases the extra sinks.
func NewFromConfig(cfg Config, extractors ...ContextExtractor) (*slog.Logger, func() error) {
	return newLogger(os.Stdout, cfg, extractors...)
}

func newLogger(stdout io.Writer, cfg Config, extractors ...ContextExtractor) (*slog.Logger, func() error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	sinks := []slog.Handler{slog.NewJSONHandler(stdout, opts)}
	var closers []func() error

	if cfg.File.Path != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   true,
		}
		sinks = append(sinks, slog.NewJSONHandler(file, opts))
		closers = append(closers, file.Close)
	}

	if cfg.Sentry.DSN != "" {
		h, flush, err := newSentryHandler(cfg.Sentry)
		if err != nil {
			slog.New(sinks[0]).Error("sentry disabled", slog.String("error", err.Error()))
		} else {
			sinks = append(sinks, h)
			closers = append(closers, flush)
		}
	}

	closeAll := func() error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}

	return slog.New(WithExtractors(fanout(sinks...), extractors...)), closeAll
}

// ParseLevel maps debug, info, warn and error to slog levels.
// Anything else yields info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
