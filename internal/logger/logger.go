// Package logger builds the service's slog logger. Development gets a
// readable text stream, debug level unless LOG_LEVEL says otherwise; staging
// and production get JSON, and production additionally writes rotating
// error.log and combined.log files.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"

	"sampleapp/internal/config"
)

const (
	errorLogFile    = "error.log"
	combinedLogFile = "combined.log"
)

// New returns the logger and a closer for any file sinks it opened.
func New(app config.AppConfig, cfg config.LogConfig, stdout io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Level == "" && app.Environment == config.EnvDevelopment {
		level = slog.LevelDebug
	}

	attrs := []slog.Attr{
		slog.String("service", app.Name),
		slog.String("environment", app.Environment),
	}

	if app.Environment == config.EnvDevelopment {
		h := slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level})
		return slog.New(h.WithAttrs(attrs)), nopCloser{}, nil
	}

	handlers := []slog.Handler{
		slog.NewJSONHandler(stdout, &slog.HandlerOptions{Level: level}),
	}
	var closers multiCloser

	if app.IsProduction() {
		errorFile := rotatingFile(cfg, errorLogFile)
		combinedFile := rotatingFile(cfg, combinedLogFile)
		closers = append(closers, errorFile, combinedFile)
		handlers = append(handlers,
			slog.NewJSONHandler(errorFile, &slog.HandlerOptions{Level: slog.LevelError}),
			slog.NewJSONHandler(combinedFile, &slog.HandlerOptions{Level: level}),
		)
	}

	return slog.New(slogmulti.Fanout(handlers...).WithAttrs(attrs)), closers, nil
}

func rotatingFile(cfg config.LogConfig, name string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
}

// ParseLevel accepts debug, info, warn/warning and error, case-insensitively.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var firstErr error
	for _, c := range m {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Discard is a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
