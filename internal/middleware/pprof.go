package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

const pprofAuthHeader = "X-Pprof-Secret"

var errPprofUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid pprof secret")

// PprofAuth guards the profiling routes with a shared secret header. An empty
// secret leaves them open.
func PprofAuth(secret string) echo.MiddlewareFunc {
	want := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(want) > 0 && subtle.ConstantTimeCompare([]byte(c.Request().Header.Get(pprofAuthHeader)), want) != 1 {
				return errPprofUnauthorized
			}
			return next(c)
		}
	}
}

// LimitProfileSeconds caps the sampling window of /profile and /trace below
// writeTimeout. net/http/pprof rejects any window at or above the server's
// WriteTimeout, and its 30s default is above ours. Zero disables the cap.
func LimitProfileSeconds(writeTimeout time.Duration) echo.MiddlewareFunc {
	limit := int(writeTimeout/time.Second) - 1
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if writeTimeout <= 0 {
				return next(c)
			}
			u := c.Request().URL
			q := u.Query()
			if n, err := strconv.Atoi(q.Get("seconds")); err != nil || n <= 0 || n > limit {
				q.Set("seconds", strconv.Itoa(max(1, limit)))
				u.RawQuery = q.Encode()
			}
			return next(c)
		}
	}
}

var pprofProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// RegisterPprof mounts net/http/pprof on g. writeTimeout is the server's
// HTTP write timeout.
func RegisterPprof(g *echo.Group, writeTimeout time.Duration) {
	wrap := func(f http.HandlerFunc) echo.HandlerFunc { return echo.WrapHandler(f) }
	sampled := LimitProfileSeconds(writeTimeout)

	g.GET("/", wrap(pprof.Index))
	g.GET("/cmdline", wrap(pprof.Cmdline))
	g.GET("/symbol", wrap(pprof.Symbol))
	g.POST("/symbol", wrap(pprof.Symbol))
	g.GET("/profile", wrap(pprof.Profile), sampled)
	g.GET("/trace", wrap(pprof.Trace), sampled)
	for _, name := range pprofProfiles {
		g.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}
}
