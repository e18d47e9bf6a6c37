// Package monitoring forwards error signals to a metrics backend without
// blocking the caller.
package monitoring

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrAlreadyRunning = errors.New("monitoring: forwarder already running")

// Backend receives error names off the request path.
type Backend interface {
	FireErrorMetric(name string)
}

// Forwarder buffers error names and hands them to the backend on its own
// goroutine. When the buffer is full the signal is dropped.
type Forwarder struct {
	backend      Backend
	logger       *slog.Logger
	ch           chan string
	wg           sync.WaitGroup
	startOnce    sync.Once
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewForwarder(backend Backend, bufferSize int, logger *slog.Logger) *Forwarder {
	return &Forwarder{
		backend:    backend,
		logger:     logger,
		ch:         make(chan string, max(1, bufferSize)),
		shutdownCh: make(chan struct{}),
	}
}

// Fire enqueues name and returns immediately.
func (f *Forwarder) Fire(name string) {
	select {
	case f.ch <- name:
	default:
		f.logger.Warn("monitoring buffer full, dropping error metric", slog.String("name", name))
	}
}

// Run delivers signals on the calling goroutine until ctx is done or Close is
// called, then drains the buffer and returns nil.
func (f *Forwarder) Run(ctx context.Context) error {
	started := false
	f.startOnce.Do(func() {
		started = true
		f.wg.Add(1)
	})
	if !started {
		return ErrAlreadyRunning
	}
	f.loop(ctx)
	return nil
}

// Start is Run on a new goroutine.
func (f *Forwarder) Start(ctx context.Context) {
	f.startOnce.Do(func() {
		f.wg.Add(1)
		go f.loop(ctx)
	})
}

// Close stops the loop after delivering whatever is still buffered.
func (f *Forwarder) Close() {
	f.shutdownOnce.Do(func() {
		close(f.shutdownCh)
		f.wg.Wait()
	})
}

func (f *Forwarder) loop(ctx context.Context) {
	defer f.wg.Done()

	for {
		select {
		case <-ctx.Done():
			f.drain()
			return
		case <-f.shutdownCh:
			f.drain()
			return
		case name := <-f.ch:
			f.deliver(name)
		}
	}
}

func (f *Forwarder) drain() {
	for {
		select {
		case name := <-f.ch:
			f.deliver(name)
		default:
			return
		}
	}
}

func (f *Forwarder) deliver(name string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("monitoring backend panicked", slog.Any("panic", r), slog.String("name", name))
		}
	}()
	f.backend.FireErrorMetric(name)
}
