// Package scheduler drives race ticks from a clock.
package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultInterval is roughly one display frame at 60 Hz
const DefaultInterval = 16 * time.Millisecond

const tickerTag = "scheduler"

var errDone = errors.New("tick func reported done")

// TickFunc is called on every tick with the clock time since the previous call.
// Returning done or an error stops the loop.
type TickFunc func(ctx context.Context, elapsed time.Duration) (done bool, err error)

// Config holds configuration for a Loop
type Config struct {
	// Clock defaults to the real clock
	Clock quartz.Clock

	// Interval defaults to DefaultInterval
	Interval time.Duration

	// Logger defaults to log.Default()
	Logger *log.Logger
}

// Loop calls a TickFunc at a fixed interval
type Loop struct {
	clock    quartz.Clock
	interval time.Duration
	logger   *log.Logger
}

// New creates a Loop
func New(cfg *Config) *Loop {
	l := &Loop{
		clock:    quartz.NewReal(),
		interval: DefaultInterval,
		logger:   log.Default(),
	}

	if cfg != nil {
		if cfg.Clock != nil {
			l.clock = cfg.Clock
		}
		if cfg.Interval > 0 {
			l.interval = cfg.Interval
		}
		if cfg.Logger != nil {
			l.logger = cfg.Logger
		}
	}

	return l
}

// Run is a started loop
type Run struct {
	waiter  quartz.Waiter
	cancel  context.CancelFunc
	stopped atomic.Bool
}

// Start registers the ticker and returns without blocking
func (l *Loop) Start(ctx context.Context, fn TickFunc) *Run {
	ctx, cancel := context.WithCancel(ctx)
	run := &Run{cancel: cancel}

	last := l.clock.Now(tickerTag)
	run.waiter = l.clock.TickerFunc(ctx, l.interval, func() error {
		now := l.clock.Now(tickerTag)
		elapsed := now.Sub(last)
		last = now

		done, err := fn(ctx, elapsed)
		if err != nil {
			return err
		}
		if done {
			return errDone
		}
		return nil
	}, tickerTag)

	return run
}

// Run starts the loop and blocks until it stops
func (l *Loop) Run(ctx context.Context, fn TickFunc) error {
	err := l.Start(ctx, fn).Wait()
	if err != nil {
		l.logger.Debug("tick loop stopped", "err", err)
	}
	return err
}

// Wait blocks until the loop stops. It returns nil when the tick func reported
// done or Stop was called, otherwise the tick func error or the context error.
func (r *Run) Wait() error {
	err := r.waiter.Wait()
	r.cancel()

	if errors.Is(err, errDone) {
		return nil
	}
	if r.stopped.Load() && errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Stop ends the loop after the current tick
func (r *Run) Stop() {
	r.stopped.Store(true)
	r.cancel()
}
