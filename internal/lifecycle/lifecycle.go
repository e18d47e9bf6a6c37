// Package lifecycle owns the listener, the drain on shutdown and the fatal
// path for faults raised outside a request.
package lifecycle

//go:generate go tool mockery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/netutil"
)

type State int32

const (
	StateStarting State = iota
	StateListening
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "STARTING"
	case StateListening:
		return "LISTENING"
	case StateDraining:
		return "DRAINING"
	case StateStopped:
		return "STOPPED"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// FaultHandler is satisfied by *errorhandler.Handler.
type FaultHandler interface {
	Handle(ctx context.Context, err error)
	IsTrusted(err error) bool
}

type Config struct {
	Addr            string
	MaxConnections  int
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ConnState       func(net.Conn, http.ConnState)
}

type Option func(*Controller)

// WithExit replaces os.Exit on the fatal path.
func WithExit(exit func(code int)) Option {
	return func(c *Controller) { c.exit = exit }
}

type Controller struct {
	cfg    Config
	logger *slog.Logger
	faults FaultHandler
	exit   func(code int)

	state     atomic.Int32
	listening chan struct{}

	mu   sync.Mutex
	addr net.Addr

	// background tasks started with Go are cancelled when Run begins draining
	bgCtx    context.Context
	bgCancel context.CancelFunc
	bgWG     sync.WaitGroup
}

func New(cfg Config, logger *slog.Logger, faults FaultHandler, opts ...Option) *Controller {
	bgCtx, bgCancel := context.WithCancel(context.Background())
	c := &Controller{
		cfg:       cfg,
		logger:    logger,
		faults:    faults,
		exit:      os.Exit,
		listening: make(chan struct{}),
		bgCtx:     bgCtx,
		bgCancel:  bgCancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	return State(c.state.Load())
}

// Listening is closed once the listener accepts connections.
func (c *Controller) Listening() <-chan struct{} {
	return c.listening
}

// Addr is nil until Listening is closed.
func (c *Controller) Addr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addr
}

// Run serves handler until ctx is cancelled, then drains within
// ShutdownTimeout. The result is the process exit code: 0 after a clean
// drain, 1 when the listener fails or the drain deadline passes.
func (c *Controller) Run(ctx context.Context, handler http.Handler) int {
	c.setState(StateStarting)

	ln, err := net.Listen("tcp", c.cfg.Addr)
	if err != nil {
		c.logger.Error("failed to start server",
			slog.String("addr", c.cfg.Addr),
			slog.String("error", fmt.Errorf("%w: %w", ErrListen, err).Error()))
		c.stopBackground()
		c.setState(StateStopped)
		return 1
	}
	if c.cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, c.cfg.MaxConnections)
	}

	srv := &http.Server{
		Handler:        handler,
		ReadTimeout:    c.cfg.ReadTimeout,
		WriteTimeout:   c.cfg.WriteTimeout,
		IdleTimeout:    c.cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 14, // 16KB
		ConnState:      c.cfg.ConnState,
	}

	c.mu.Lock()
	c.addr = ln.Addr()
	c.mu.Unlock()

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	c.setState(StateListening)
	close(c.listening)
	c.logger.Info("server listening",
		slog.String("addr", ln.Addr().String()),
		slog.Int("max_connections", c.cfg.MaxConnections))

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		c.logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		c.stopBackground()
		c.setState(StateStopped)
		return 1
	}

	c.setState(StateDraining)
	c.logger.Info("shutting down, draining connections",
		slog.Duration("timeout", c.cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.cfg.ShutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	c.stopBackground()
	c.setState(StateStopped)

	if err != nil {
		_ = srv.Close()
		c.logger.Error("forced shutdown",
			slog.String("error", fmt.Errorf("%w: %w", ErrDrainDeadline, err).Error()))
		return 1
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		c.logger.Error("server error during shutdown", slog.String("error", err.Error()))
		return 1
	}

	c.logger.Info("server stopped")
	return 0
}

// HandleFault is the fatal path for faults raised outside a request. The
// fault is always reported; the process exits 1 unless it is trusted.
func (c *Controller) HandleFault(err error) {
	if err == nil {
		return
	}
	c.faults.Handle(context.Background(), err)
	if c.faults.IsTrusted(err) {
		return
	}
	c.logger.Error("untrusted fault, exiting", slog.String("error", err.Error()))
	c.exit(1)
}

// Recover must be deferred directly by the goroutine it protects.
func (c *Controller) Recover() {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrPanic, r)
	}
	c.HandleFault(err)
}

// Go runs fn in the background with the controller's task context. A
// returned error is raised as a panic and so reaches the fatal path, except
// context.Canceled once the controller has stopped the tasks.
func (c *Controller) Go(fn func(ctx context.Context) error) {
	c.bgWG.Add(1)
	go func() {
		defer c.bgWG.Done()
		defer c.Recover()
		err := fn(c.bgCtx)
		if err == nil || (errors.Is(err, context.Canceled) && c.bgCtx.Err() != nil) {
			return
		}
		panic(err)
	}()
}

// Wait blocks until every task started with Go has returned.
func (c *Controller) Wait() {
	c.bgWG.Wait()
}

func (c *Controller) stopBackground() {
	c.bgCancel()
}

func (c *Controller) setState(s State) {
	c.state.Store(int32(s))
	c.logger.Debug("lifecycle state", slog.String("state", s.String()))
}
