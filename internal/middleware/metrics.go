package middleware

//go:generate go tool mockery

import (
	"cmp"
	"time"

	"github.com/labstack/echo/v4"

	"sampleapp/internal/metrics"
)

// RouteLabelKey lets a handler override the route label recorded for its
// request.
const RouteLabelKey = "metrics_route"

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records exactly one sample per request, after the response has
// been written. Errors are handed to the echo error handler here so the
// sample carries the final status code.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Method:     c.Request().Method,
				Route:      RouteLabel(c),
				StatusCode: c.Response().Status,
				Duration:   time.Since(start),
			})

			return nil
		}
	}
}

// RouteLabel is the override set under RouteLabelKey, else the matched route
// pattern, else the raw request path.
func RouteLabel(c echo.Context) string {
	if route, ok := c.Get(RouteLabelKey).(string); ok && route != "" {
		return route
	}
	return cmp.Or(c.Path(), c.Request().URL.Path, "/")
}
