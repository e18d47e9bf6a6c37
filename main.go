package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"sampleapp/internal/config"
	"sampleapp/internal/downstream"
	"sampleapp/internal/errorhandler"
	"sampleapp/internal/handler"
	"sampleapp/internal/lifecycle"
	"sampleapp/internal/locale"
	"sampleapp/internal/logger"
	"sampleapp/internal/metrics"
	"sampleapp/internal/monitoring"
	"sampleapp/internal/sample"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		return 1
	}

	log, closer, err := logger.New(cfg.App, cfg.Log, os.Stdout)
	if err != nil {
		slog.Error("failed to create logger", slog.String("error", err.Error()))
		return 1
	}
	defer closer.Close()

	registry := metrics.NewRegistry()
	registry.SetBuildInfo(cfg.App.Version, cfg.App.Environment, cfg.App.BuildDate)

	forwarder := monitoring.NewForwarder(registry, cfg.Monitoring.BufferSize, log)
	errs := errorhandler.New(log, forwarder)

	ctl := lifecycle.New(lifecycle.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		MaxConnections:  cfg.Server.MaxConnections,
		ShutdownTimeout: cfg.Shutdown.Timeout,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		IdleTimeout:     cfg.HTTP.IdleTimeout,
		ConnState:       registry.ConnStateHook,
	}, log, errs)
	defer ctl.Recover()

	ctl.Go(forwarder.Run)

	h := handler.New(cfg.App, handler.Deps{
		Samples:    sample.NewService(),
		External:   downstream.NewClient(nil, cfg.External.SampleAppURL, cfg.External.Timeout),
		Snapshots:  registry,
		Operations: registry,
		Errors:     errs,
		Translator: locale.NewTranslator(cfg.App.DefaultLocale),
		Logger:     log,
	})

	e := newRouter(cfg, log, registry, h)

	log.Info("starting service",
		slog.String("version", cfg.App.Version),
		slog.String("build_date", cfg.App.BuildDate),
		slog.String("downstream", cfg.External.SampleAppURL),
		slog.Int("pid", os.Getpid()))

	code := ctl.Run(ctx, e)
	ctl.Wait()
	return code
}
