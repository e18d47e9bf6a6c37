package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger writes one "HTTP Request" line per completed request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			logger.LogAttrs(req.Context(), slog.LevelInfo, "HTTP Request",
				slog.String("method", req.Method),
				slog.String("url", req.RequestURI),
				slog.String("route", RouteLabel(c)),
				slog.Int("status_code", res.Status),
				slog.Duration("duration", time.Since(start)),
				slog.String("user_agent", req.UserAgent()),
				slog.String("ip", c.RealIP()),
				slog.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			)
			return nil
		}
	}
}
