// Package worker implements the polling workers that keep the store fresh:
// a generic self-rescheduling timer primitive plus the per-service refresh
// policies for Last.fm, Pinboard and Pocket.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrIntervalRequired is returned by Start when no interval is given.
var ErrIntervalRequired = errors.New("worker: interval is required")

// runTimeout bounds one work step. Upstream call timeouts are enforced by
// the HTTP clients; this is a backstop for the whole tick.
const runTimeout = 2 * time.Minute

// Outcome is the tagged result of one work step's decide/refresh policy.
type Outcome int

const (
	OutcomeRefreshed Outcome = iota
	OutcomeThrottled
	OutcomeNoUpdateNeeded
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRefreshed:
		return "refreshed"
	case OutcomeThrottled:
		return "throttled"
	case OutcomeNoUpdateNeeded:
		return "no-update-needed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Callback is invoked each time work completes, and for start/cancel
// notices. detail is a human-readable status string used purely for
// observability; it never drives control flow.
type Callback func(err error, detail string)

// TickInfo describes one completed work step.
type TickInfo struct {
	Worker   string
	Outcome  Outcome
	Detail   string
	Err      error
	Duration time.Duration
	At       time.Time
}

// Observer receives a TickInfo after every completed work step. Used for
// metrics and event publishing; observers must not block for long.
type Observer interface {
	ObserveTick(info TickInfo)
}

// workFunc is the abstract work step supplied by a concrete worker.
type workFunc func(ctx context.Context) (Outcome, string, error)

// Worker runs a work step on an interval, rescheduling the next run only
// after the previous one completes. The interval is a minimum gap between
// runs, not a wall-clock period, so slow work throttles itself.
type Worker struct {
	name      string
	callback  Callback
	observers []Observer
	work      workFunc

	mu       sync.Mutex
	timer    *time.Timer
	interval time.Duration
	stopped  bool
}

// Option configures a Worker.
type Option func(*Worker)

// WithObserver registers an observer for completed work steps.
func WithObserver(obs Observer) Option {
	return func(w *Worker) {
		if obs != nil {
			w.observers = append(w.observers, obs)
		}
	}
}

func newWorker(name string, callback Callback, opts ...Option) *Worker {
	w := &Worker{
		name:     name,
		callback: callback,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name returns the worker's name, used in log messages.
func (w *Worker) Name() string {
	return w.name
}

// Start schedules the first run after interval, then keeps rescheduling
// after each run completes. Starting an already-scheduled worker is a
// no-op, which prevents duplicate interleaved polling loops.
func (w *Worker) Start(interval time.Duration) error {
	if interval <= 0 {
		return ErrIntervalRequired
	}

	w.mu.Lock()
	if w.timer != nil {
		w.mu.Unlock()
		return nil
	}
	w.interval = interval
	w.stopped = false
	w.timer = time.AfterFunc(interval, w.run)
	w.mu.Unlock()

	w.notify(nil, "worker started")
	return nil
}

// Cancel clears a pending run. An in-flight work step is not aborted; it
// completes, persists, and simply is not rescheduled. Idempotent, and a
// no-op on a worker that was never started.
func (w *Worker) Cancel() {
	w.mu.Lock()
	timer := w.timer
	w.timer = nil
	// always mark stopped: a run may be in flight even when a timer is
	// pending (stacked Start), and its completion must not reschedule
	w.stopped = true
	w.mu.Unlock()

	if timer != nil {
		timer.Stop()
		w.notify(nil, "worker cancelled")
	}
}

func (w *Worker) run() {
	w.mu.Lock()
	w.timer = nil
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	started := time.Now()
	outcome, detail, err := w.work(ctx)
	cancel()

	for _, obs := range w.observers {
		obs.ObserveTick(TickInfo{
			Worker:   w.name,
			Outcome:  outcome,
			Detail:   detail,
			Err:      err,
			Duration: time.Since(started),
			At:       started,
		})
	}

	w.notify(err, detail)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		w.stopped = false
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.interval, w.run)
	}
}

func (w *Worker) notify(err error, detail string) {
	if w.callback != nil {
		w.callback(err, detail)
		return
	}
	if err != nil {
		// no callback configured: production wiring always supplies one,
		// so an unhandled work error is a programmer error
		panic(err)
	}
}

// LoggingCallback builds the standard completion callback: errors are
// logged as errors, details as info, and a silent success as a generic
// success message.
func LoggingCallback(logger *slog.Logger, name string) Callback {
	return func(err error, detail string) {
		if err != nil {
			logger.Error("worker run failed", "worker", name, "error", err)
			return
		}
		if detail != "" {
			logger.Info(detail, "worker", name)
			return
		}
		logger.Info("work successful", "worker", name)
	}
}
