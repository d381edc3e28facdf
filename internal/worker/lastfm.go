package worker

import (
	"context"
	"fmt"
	"time"

	"homeboard/internal/errs"
	"homeboard/internal/store"
)

// DefaultLastfmWindow is the minimum gap between two Last.fm refreshes.
const DefaultLastfmWindow = time.Second

// LastfmWorker polls Last.fm for recent tracks. The refresh decision is
// purely elapsed-time based: refresh on a cold cache, otherwise only once
// the rate-limit window has passed since the last local update.
type LastfmWorker struct {
	*Worker
	client LastfmClient
	store  Store
	window time.Duration
}

func NewLastfmWorker(client LastfmClient, st Store, window time.Duration, callback Callback, opts ...Option) (*LastfmWorker, error) {
	if client == nil {
		return nil, &errs.RequiredParamError{Param: "client", Type: "worker.LastfmClient"}
	}
	if st == nil {
		return nil, &errs.RequiredParamError{Param: "st", Type: "worker.Store"}
	}
	if window <= 0 {
		window = DefaultLastfmWindow
	}

	w := &LastfmWorker{
		Worker: newWorker("lastfm", callback, opts...),
		client: client,
		store:  st,
		window: window,
	}
	w.work = w.doWork
	return w, nil
}

func (w *LastfmWorker) doWork(ctx context.Context) (Outcome, string, error) {
	lastUpdated, err := w.store.Get(ctx, store.KeyLastfmLastUpdated)
	if err != nil {
		return OutcomeRefreshed, "", err
	}

	if lastUpdated != "" {
		if at, parseErr := time.Parse(time.RFC3339, lastUpdated); parseErr == nil {
			if elapsed := time.Since(at); elapsed < w.window {
				remaining := w.window - elapsed
				detail := fmt.Sprintf("Last.fm update throttled. Time remaining until next update: %d seconds", toSeconds(remaining))
				return OutcomeThrottled, detail, nil
			}
		}
	}

	return w.refresh(ctx)
}

func (w *LastfmWorker) refresh(ctx context.Context) (Outcome, string, error) {
	tracks, err := w.client.RecentTracks(ctx)
	if err != nil {
		return OutcomeRefreshed, "", err
	}

	err = w.store.SetAll(ctx, map[string]string{
		store.KeyLastfmLastUpdated: time.Now().UTC().Format(time.RFC3339),
		store.KeyLastfmTracks:      string(tracks),
	})
	if err != nil {
		return OutcomeRefreshed, "", err
	}

	return OutcomeRefreshed, "", nil
}

func toSeconds(d time.Duration) int {
	return int(d / time.Second)
}
