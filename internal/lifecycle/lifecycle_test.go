package lifecycle_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sampleapp/internal/apperror"
	"sampleapp/internal/errorhandler"
	"sampleapp/internal/lifecycle"
	"sampleapp/internal/lifecycle/mocks"
	"sampleapp/internal/logger"
	"sampleapp/internal/monitoring"
)

func testConfig(shutdown time.Duration) lifecycle.Config {
	return lifecycle.Config{
		Addr:            "127.0.0.1:0",
		ShutdownTimeout: shutdown,
		ReadTimeout:     time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     time.Second,
	}
}

type runResult struct {
	code int
}

func start(t *testing.T, c *lifecycle.Controller, h http.Handler) (context.CancelFunc, <-chan runResult) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan runResult, 1)
	go func() { done <- runResult{code: c.Run(ctx, h)} }()

	select {
	case <-c.Listening():
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("server did not start listening")
	}
	return cancel, done
}

func waitExit(t *testing.T, done <-chan runResult) int {
	t.Helper()
	select {
	case r := <-done:
		return r.code
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return")
		return -1
	}
}

func TestRun_CleanDrainExitsZero(t *testing.T) {
	c := lifecycle.New(testConfig(5*time.Second), logger.Discard(), mocks.NewMockFaultHandler(t))
	assert.Equal(t, lifecycle.StateStarting, c.State())

	cancel, done := start(t, c, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	assert.Equal(t, lifecycle.StateListening, c.State())

	resp, err := http.Get("http://" + c.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	begin := time.Now()
	cancel()
	assert.Equal(t, 0, waitExit(t, done))
	assert.Less(t, time.Since(begin), 5*time.Second)
	assert.Equal(t, lifecycle.StateStopped, c.State())
}

func TestRun_InFlightRequestFinishesDuringDrain(t *testing.T) {
	c := lifecycle.New(testConfig(5*time.Second), logger.Discard(), mocks.NewMockFaultHandler(t))
	entered := make(chan struct{})
	release := make(chan struct{})

	cancel, done := start(t, c, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	}))

	respCh := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + c.Addr().String() + "/slow")
		if err != nil {
			respCh <- 0
			return
		}
		resp.Body.Close()
		respCh <- resp.StatusCode
	}()

	<-entered
	cancel()
	require.Eventually(t, func() bool { return c.State() == lifecycle.StateDraining }, time.Second, 5*time.Millisecond)
	close(release)

	assert.Equal(t, 0, waitExit(t, done))
	assert.Equal(t, http.StatusOK, <-respCh)
}

func TestRun_DrainDeadlineExitsOne(t *testing.T) {
	c := lifecycle.New(testConfig(100*time.Millisecond), logger.Discard(), mocks.NewMockFaultHandler(t))
	entered := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	cancel, done := start(t, c, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
	}))

	go func() {
		resp, err := http.Get("http://" + c.Addr().String() + "/stuck")
		if err == nil {
			resp.Body.Close()
		}
	}()

	<-entered
	cancel()
	assert.Equal(t, 1, waitExit(t, done))
	assert.Equal(t, lifecycle.StateStopped, c.State())
}

func TestRun_ListenFailureExitsOne(t *testing.T) {
	first := lifecycle.New(testConfig(time.Second), logger.Discard(), mocks.NewMockFaultHandler(t))
	cancel, done := start(t, first, http.NotFoundHandler())
	defer func() {
		cancel()
		waitExit(t, done)
	}()

	cfg := testConfig(time.Second)
	cfg.Addr = first.Addr().String()
	second := lifecycle.New(cfg, logger.Discard(), mocks.NewMockFaultHandler(t))

	assert.Equal(t, 1, second.Run(context.Background(), http.NotFoundHandler()))
	assert.Equal(t, lifecycle.StateStopped, second.State())
}

func TestHandleFault(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantExit bool
	}{
		{"untrusted plain error exits", errors.New("unknown state"), true},
		{"defect application error exits", apperror.Internal("corrupted"), true},
		{"trusted operational error keeps running", apperror.Validation("bad input"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitCode atomic.Int32
			exitCode.Store(-1)
			c := lifecycle.New(testConfig(time.Second), logger.Discard(),
				errorhandler.New(logger.Discard(), nil),
				lifecycle.WithExit(func(code int) { exitCode.Store(int32(code)) }))

			c.HandleFault(tt.err)

			if tt.wantExit {
				assert.Equal(t, int32(1), exitCode.Load())
			} else {
				assert.Equal(t, int32(-1), exitCode.Load())
			}
		})
	}
}

func TestHandleFault_ReportsBeforeExiting(t *testing.T) {
	faults := mocks.NewMockFaultHandler(t)
	fault := errors.New("boom")
	var order []string
	faults.EXPECT().Handle(mock.Anything, fault).Run(func(context.Context, error) {
		order = append(order, "handle")
	}).Return().Once()
	faults.EXPECT().IsTrusted(fault).Return(false).Once()

	c := lifecycle.New(testConfig(time.Second), logger.Discard(), faults,
		lifecycle.WithExit(func(int) { order = append(order, "exit") }))
	c.HandleFault(fault)

	assert.Equal(t, []string{"handle", "exit"}, order)
}

func TestRecover_ConvertsPanicToFault(t *testing.T) {
	faults := mocks.NewMockFaultHandler(t)
	faults.EXPECT().Handle(mock.Anything, mock.MatchedBy(func(err error) bool {
		return errors.Is(err, lifecycle.ErrPanic)
	})).Return().Once()
	faults.EXPECT().IsTrusted(mock.Anything).Return(false).Once()

	exited := make(chan int, 1)
	c := lifecycle.New(testConfig(time.Second), logger.Discard(), faults,
		lifecycle.WithExit(func(code int) { exited <- code }))

	func() {
		defer c.Recover()
		panic("nil map write")
	}()

	assert.Equal(t, 1, <-exited)
}

func TestGo_ReturnedErrorIsFatal(t *testing.T) {
	faults := mocks.NewMockFaultHandler(t)
	taskErr := errors.New("background task failed")
	faults.EXPECT().Handle(mock.Anything, taskErr).Return().Once()
	faults.EXPECT().IsTrusted(taskErr).Return(false).Once()

	exited := make(chan int, 1)
	c := lifecycle.New(testConfig(time.Second), logger.Discard(), faults,
		lifecycle.WithExit(func(code int) { exited <- code }))

	c.Go(func(context.Context) error { return taskErr })
	c.Wait()

	assert.Equal(t, 1, <-exited)
}

func TestGo_CancelledOnShutdown(t *testing.T) {
	c := lifecycle.New(testConfig(time.Second), logger.Discard(), mocks.NewMockFaultHandler(t),
		lifecycle.WithExit(func(int) { t.Error("unexpected exit") }))

	cancel, done := start(t, c, http.NotFoundHandler())
	c.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	cancel()
	assert.Equal(t, 0, waitExit(t, done))
	c.Wait()
}

func TestGo_ForwarderDrainsOnShutdown(t *testing.T) {
	c := lifecycle.New(testConfig(time.Second), logger.Discard(), mocks.NewMockFaultHandler(t),
		lifecycle.WithExit(func(int) { t.Error("unexpected exit") }))
	backend := &countingBackend{}
	forwarder := monitoring.NewForwarder(backend, 8, logger.Discard())

	cancel, done := start(t, c, http.NotFoundHandler())
	c.Go(forwarder.Run)
	forwarder.Fire(apperror.NameInternalServerError)

	cancel()
	assert.Equal(t, 0, waitExit(t, done))
	c.Wait()

	assert.Equal(t, int64(1), backend.fired.Load())
}

type countingBackend struct {
	fired atomic.Int64
}

func (b *countingBackend) FireErrorMetric(string) { b.fired.Add(1) }

func TestStateString(t *testing.T) {
	assert.Equal(t, "STARTING", lifecycle.StateStarting.String())
	assert.Equal(t, "LISTENING", lifecycle.StateListening.String())
	assert.Equal(t, "DRAINING", lifecycle.StateDraining.String())
	assert.Equal(t, "STOPPED", lifecycle.StateStopped.String())
}
