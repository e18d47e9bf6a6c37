package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sampleapp/internal/config"
)

// RequestID assigns a UUID to requests that arrive without X-Request-Id.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// Standard returns security headers, CORS, gzip and the body limit, in that
// order.
func Standard(cfg *config.HTTPConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		middleware.Secure(),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
		}),
		middleware.GzipWithConfig(middleware.GzipConfig{
			MinLength: 1024,
		}),
		middleware.BodyLimit(cfg.BodyLimit),
	}
}
