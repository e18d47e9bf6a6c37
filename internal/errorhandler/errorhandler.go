// Package errorhandler is the last stop for every error the service sees:
// it logs, signals monitoring, and decides whether a fault is survivable.
package errorhandler

//go:generate go tool mockery

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"sampleapp/internal/apperror"
)

type MonitoringSink interface {
	Fire(name string)
}

type NoopSink struct{}

func (NoopSink) Fire(string) {}

type Handler struct {
	logger *slog.Logger
	sink   MonitoringSink
}

// New uses NoopSink when sink is nil.
func New(logger *slog.Logger, sink MonitoringSink) *Handler {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Handler{logger: logger, sink: sink}
}

// Handle never panics and never returns an error.
func (h *Handler) Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	defer func() { _ = recover() }()

	name := Name(err)
	h.logError(ctx, name, err)
	h.fire(ctx, name)
}

// IsTrusted reports whether the process may keep running after err.
func (h *Handler) IsTrusted(err error) bool {
	return apperror.Classify(err).IsOperational
}

func (h *Handler) logError(ctx context.Context, name string, err error) {
	// A panicking log handler is swallowed; there is nowhere left to report it.
	defer func() { _ = recover() }()

	attrs := []slog.Attr{
		slog.String("name", name),
		slog.String("message", Message(err)),
	}
	if appErr, ok := apperror.As(err); ok {
		attrs = append(attrs,
			slog.String("stack", appErr.Stack()),
			slog.Int("http_status", int(appErr.Status())),
			slog.Bool("is_operational", appErr.IsOperational()),
		)
	}
	h.logger.LogAttrs(ctx, slog.LevelError, "Application error", attrs...)
}

func (h *Handler) fire(ctx context.Context, name string) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.LogAttrs(ctx, slog.LevelWarn, "monitoring sink panicked",
				slog.String("name", name), slog.String("panic", fmt.Sprint(r)))
		}
	}()
	h.sink.Fire(name)
}

// Name is the application error name, or the dynamic Go type of any other
// error.
func Name(err error) string {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Name()
	}
	return reflect.TypeOf(err).String()
}

func Message(err error) string {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Message()
	}
	return err.Error()
}
