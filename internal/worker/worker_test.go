package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// callbackRecorder collects completion callback invocations.
type callbackRecorder struct {
	mu      sync.Mutex
	entries []callbackEntry
}

type callbackEntry struct {
	err    error
	detail string
}

func (r *callbackRecorder) callback(err error, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, callbackEntry{err: err, detail: detail})
}

func (r *callbackRecorder) all() []callbackEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]callbackEntry(nil), r.entries...)
}

func TestWorker_StartRequiresInterval(t *testing.T) {
	rec := &callbackRecorder{}
	w := newWorker("test", rec.callback)
	w.work = func(ctx context.Context) (Outcome, string, error) {
		return OutcomeRefreshed, "", nil
	}

	err := w.Start(0)
	require.ErrorIs(t, err, ErrIntervalRequired)
	require.Empty(t, rec.all())
}

func TestWorker_StartNotifiesSynchronously(t *testing.T) {
	rec := &callbackRecorder{}
	w := newWorker("test", rec.callback)
	w.work = func(ctx context.Context) (Outcome, string, error) {
		return OutcomeRefreshed, "", nil
	}
	defer w.Cancel()

	require.NoError(t, w.Start(time.Hour))

	entries := rec.all()
	require.Len(t, entries, 1)
	require.NoError(t, entries[0].err)
	require.Equal(t, "worker started", entries[0].detail)
}

func TestWorker_StartTwiceIsNoOp(t *testing.T) {
	rec := &callbackRecorder{}
	w := newWorker("test", rec.callback)
	w.work = func(ctx context.Context) (Outcome, string, error) {
		return OutcomeRefreshed, "", nil
	}
	defer w.Cancel()

	require.NoError(t, w.Start(time.Hour))
	require.NoError(t, w.Start(time.Hour))

	// only the first start schedules and notifies
	require.Len(t, rec.all(), 1)
}

func TestWorker_CancelBeforeStartIsNoOp(t *testing.T) {
	rec := &callbackRecorder{}
	w := newWorker("test", rec.callback)
	w.work = func(ctx context.Context) (Outcome, string, error) {
		return OutcomeRefreshed, "", nil
	}

	w.Cancel()
	w.Cancel()

	require.Empty(t, rec.all())
}

func TestWorker_CancelStopsPendingRun(t *testing.T) {
	rec := &callbackRecorder{}
	ran := make(chan struct{}, 1)
	w := newWorker("test", rec.callback)
	w.work = func(ctx context.Context) (Outcome, string, error) {
		ran <- struct{}{}
		return OutcomeRefreshed, "", nil
	}

	require.NoError(t, w.Start(50 * time.Millisecond))
	w.Cancel()

	entries := rec.all()
	require.Len(t, entries, 2)
	require.Equal(t, "worker cancelled", entries[1].detail)

	select {
	case <-ran:
		t.Fatal("work ran after cancel")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWorker_CancelDuringInFlightRunStopsPolling(t *testing.T) {
	rec := &callbackRecorder{}
	block := make(chan struct{})
	runs := make(chan struct{}, 8)
	w := newWorker("test", rec.callback)
	w.work = func(ctx context.Context) (Outcome, string, error) {
		runs <- struct{}{}
		<-block
		return OutcomeRefreshed, "", nil
	}

	require.NoError(t, w.Start(time.Millisecond))
	<-runs // first run is in flight, its timer handle already cleared

	// a stacked start schedules a second timer while the run is in flight
	require.NoError(t, w.Start(time.Hour))
	w.Cancel()
	close(block)

	// neither the pending timer nor the in-flight run's completion may
	// schedule another run
	select {
	case <-runs:
		t.Fatal("work ran again after cancel")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWorker_ReschedulesAfterEachRun(t *testing.T) {
	rec := &callbackRecorder{}
	runs := make(chan struct{}, 8)
	w := newWorker("test", rec.callback)
	w.work = func(ctx context.Context) (Outcome, string, error) {
		runs <- struct{}{}
		return OutcomeRefreshed, "tick", nil
	}
	defer w.Cancel()

	require.NoError(t, w.Start(5 * time.Millisecond))

	for i := 0; i < 3; i++ {
		select {
		case <-runs:
		case <-time.After(time.Second):
			t.Fatalf("run %d never fired", i)
		}
	}
}

func TestWorker_WorkErrorReachesCallback(t *testing.T) {
	rec := &callbackRecorder{}
	boom := errors.New("boom")
	ran := make(chan struct{}, 1)
	w := newWorker("test", rec.callback)
	w.work = func(ctx context.Context) (Outcome, string, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return OutcomeRefreshed, "", boom
	}
	defer w.Cancel()

	require.NoError(t, w.Start(5 * time.Millisecond))

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("work never ran")
	}

	require.Eventually(t, func() bool {
		for _, entry := range rec.all() {
			if errors.Is(entry.err, boom) {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestWorker_ObserversSeeEveryTick(t *testing.T) {
	ticks := make(chan TickInfo, 8)
	w := newWorker("test", func(error, string) {}, WithObserver(observerFunc(func(info TickInfo) {
		ticks <- info
	})))
	w.work = func(ctx context.Context) (Outcome, string, error) {
		return OutcomeThrottled, "throttled", nil
	}
	defer w.Cancel()

	require.NoError(t, w.Start(5 * time.Millisecond))

	select {
	case info := <-ticks:
		require.Equal(t, "test", info.Worker)
		require.Equal(t, OutcomeThrottled, info.Outcome)
		require.Equal(t, "throttled", info.Detail)
	case <-time.After(time.Second):
		t.Fatal("observer never notified")
	}
}

func TestWorker_NoCallbackPanicsOnError(t *testing.T) {
	w := newWorker("test", nil)

	require.NotPanics(t, func() { w.notify(nil, "fine") })
	require.Panics(t, func() { w.notify(errors.New("boom"), "") })
}

type observerFunc func(info TickInfo)

func (f observerFunc) ObserveTick(info TickInfo) { f(info) }
