package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sampleapp/internal/config"
	"sampleapp/internal/locale"
	"sampleapp/internal/metrics"
	"sampleapp/internal/middleware"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusReady     = "ready"

	externalServiceKey = "sample2_app"

	headerAcceptLanguage = "Accept-Language"
)

var features = map[string]bool{
	"monitoring": true,
	"logging":    true,
	"security":   true,
}

type Deps struct {
	Samples    SampleService
	External   ExternalChecker
	Snapshots  MetricsSnapshotter
	Operations OperationRecorder
	Errors     ErrorReporter
	Translator *locale.Translator
	Logger     *slog.Logger
}

type Handler struct {
	app        config.AppConfig
	samples    SampleService
	external   ExternalChecker
	snapshots  MetricsSnapshotter
	operations OperationRecorder
	errors     ErrorReporter
	translator *locale.Translator
	logger     *slog.Logger
	startedAt  time.Time
	now        func() time.Time
}

func New(app config.AppConfig, deps Deps) *Handler {
	return &Handler{
		app:        app,
		samples:    deps.Samples,
		external:   deps.External,
		snapshots:  deps.Snapshots,
		operations: deps.Operations,
		errors:     deps.Errors,
		translator: deps.Translator,
		logger:     deps.Logger,
		startedAt:  time.Now(),
		now:        time.Now,
	}
}

// Register mounts every route and installs HandleError as the terminal
// error handler.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
	e.GET("/health/external", h.ExternalHealth)
	e.GET("/metrics", h.Metrics)

	api := e.Group("/api")
	api.GET("/users", h.Users)
	api.GET("/status", h.Status)
	api.GET("/error", h.SimulateError)

	e.RouteNotFound("/*", h.NotFound)
	e.HTTPErrorHandler = h.HandleError
}

type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Version     string    `json:"version"`
	Uptime      float64   `json:"uptime"`
}

func (h *Handler) Health(c echo.Context) error {
	now := h.now()
	return c.JSON(http.StatusOK, healthResponse{
		Status:      statusHealthy,
		Timestamp:   now,
		Environment: h.app.Environment,
		Version:     h.app.Version,
		Uptime:      now.Sub(h.startedAt).Seconds(),
	})
}

type readyResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) Ready(c echo.Context) error {
	return c.JSON(http.StatusOK, readyResponse{Status: statusReady, Timestamp: h.now()})
}

type externalService struct {
	Status       string `json:"status"`
	URL          string `json:"url"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
	Error        string `json:"error,omitempty"`
}

type externalHealthResponse struct {
	Status           string                     `json:"status"`
	Timestamp        time.Time                  `json:"timestamp"`
	ExternalServices map[string]externalService `json:"external_services"`
}

// ExternalHealth answers 503 instead of returning an error when the
// downstream probe fails.
func (h *Handler) ExternalHealth(c echo.Context) error {
	res, err := h.external.CheckHealth(c.Request().Context())
	if err != nil {
		h.logger.Error("External health check failed",
			slog.String("service", "sample2-app"),
			slog.String("url", h.external.URL()),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusServiceUnavailable, externalHealthResponse{
			Status:    statusUnhealthy,
			Timestamp: h.now(),
			ExternalServices: map[string]externalService{
				externalServiceKey: {
					Status: statusUnhealthy,
					URL:    h.external.URL(),
					Error:  err.Error(),
				},
			},
		})
	}

	return c.JSON(http.StatusOK, externalHealthResponse{
		Status:    statusHealthy,
		Timestamp: h.now(),
		ExternalServices: map[string]externalService{
			externalServiceKey: {
				Status:       statusHealthy,
				URL:          res.URL,
				ResponseTime: res.ResponseTime,
				Data:         res.Data,
			},
		},
	})
}

func (h *Handler) Metrics(c echo.Context) error {
	body, contentType, err := h.snapshots.Snapshot()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, body)
}

type usersResponse struct {
	Success     bool   `json:"success"`
	Data        any    `json:"data"`
	Environment string `json:"environment"`
}

func (h *Handler) Users(c echo.Context) error {
	users, err := h.samples.Users(c.Request().Context())
	if err != nil {
		h.operations.RecordUserOperation("list", "error")
		return err
	}
	h.operations.RecordUserOperation("list", "success")

	return c.JSON(http.StatusOK, usersResponse{
		Success:     true,
		Data:        users,
		Environment: h.app.Environment,
	})
}

type statusResponse struct {
	Service     string          `json:"service"`
	Environment string          `json:"environment"`
	Timestamp   time.Time       `json:"timestamp"`
	Version     string          `json:"version"`
	Features    map[string]bool `json:"features"`
}

func (h *Handler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		Service:     h.app.Name,
		Environment: h.app.Environment,
		Timestamp:   h.now(),
		Version:     h.app.Version,
		Features:    features,
	})
}

// SimulateError hands the simulated failure to HandleError; it never writes
// an error response itself.
func (h *Handler) SimulateError(c echo.Context) error {
	msg, err := h.samples.Simulate()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

type notFoundResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func (h *Handler) NotFound(c echo.Context) error {
	c.Set(middleware.RouteLabelKey, metrics.UnknownRoute)
	req := c.Request()
	return c.JSON(http.StatusNotFound, notFoundResponse{
		Error:   http.StatusText(http.StatusNotFound),
		Message: h.translator.Translate(req.Header.Get(headerAcceptLanguage), locale.NotFound),
		Path:    req.RequestURI,
	})
}
