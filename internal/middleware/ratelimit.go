package middleware

import (
	"crypto/subtle"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"sampleapp/internal/config"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var (
	errRateLimited   = echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
	errLimiterFailed = echo.NewHTTPError(http.StatusInternalServerError, "rate limiter failure")
)

// RateLimit limits each client IP with a token bucket. Rejections are
// returned as errors so the terminal error handler answers them; requests
// carrying the configured bypass secret are never limited.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	retryAfter := strconv.Itoa(retryAfterSeconds(cfg.RPS))

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		}),
		Skipper: bypassSkipper(cfg.BypassSecret),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, ip string, _ error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", ip),
				slog.String("route", RouteLabel(c)),
			)
			c.Response().Header().Set("Retry-After", retryAfter)
			return errRateLimited
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errLimiterFailed.WithInternal(err)
		},
	})
}

// retryAfterSeconds is the time one token takes to refill, at least a second.
func retryAfterSeconds(rps float64) int {
	if rps <= 0 {
		return 60
	}
	return max(1, int(math.Ceil(1/rps)))
}

func bypassSkipper(secret string) middleware.Skipper {
	if secret == "" {
		return middleware.DefaultSkipper
	}
	want := []byte(secret)
	return func(c echo.Context) bool {
		got := []byte(c.Request().Header.Get(bypassHeader))
		return subtle.ConstantTimeCompare(got, want) == 1
	}
}
