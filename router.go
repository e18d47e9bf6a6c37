package main

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sampleapp/internal/config"
	"sampleapp/internal/handler"
	custommiddleware "sampleapp/internal/middleware"
)

// newRouter assembles the middleware chain. Logging and metrics sit outside
// Recover and the body limit so panics and rejected bodies are still logged
// and counted once.
func newRouter(cfg *config.Config, logger *slog.Logger, recorder custommiddleware.HTTPRecorder, h *handler.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(middleware.Recover())
	e.Use(custommiddleware.Standard(&cfg.HTTP)...)
	if cfg.RateLimit.Enabled {
		e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))
	}

	h.Register(e)

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup, cfg.HTTP.WriteTimeout)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	return e
}
