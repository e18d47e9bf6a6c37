package preflight_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampleapp/internal/bench/preflight"
)

func TestRun_WaitsUntilReady(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Rate-Limit-Bypass"))
		if calls.Add(1) <= 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := preflight.Run(context.Background(), srv.URL, "secret", false, 5*time.Second)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls.Load(), int32(4))
}

func TestRun_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ready" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := preflight.Run(context.Background(), srv.URL, "", false, 300*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/ready not ready")
}
