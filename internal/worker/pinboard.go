package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homeboard/internal/client/pinboard"
	"homeboard/internal/errs"
	"homeboard/internal/store"
)

// DefaultPinboardWindow is the minimum gap between two posts/all calls,
// matching Pinboard's documented rate limit for that endpoint.
const DefaultPinboardWindow = 5 * time.Minute

// PinboardWorker polls Pinboard for bookmarks. Before paying for the
// expensive posts/all call it probes the cheap posts/update endpoint; a
// refresh only happens when upstream actually changed and the rate-limit
// window has passed.
type PinboardWorker struct {
	*Worker
	client PinboardClient
	store  Store
	window time.Duration
}

func NewPinboardWorker(client PinboardClient, st Store, window time.Duration, callback Callback, opts ...Option) (*PinboardWorker, error) {
	if client == nil {
		return nil, &errs.RequiredParamError{Param: "client", Type: "worker.PinboardClient"}
	}
	if st == nil {
		return nil, &errs.RequiredParamError{Param: "st", Type: "worker.Store"}
	}
	if window <= 0 {
		window = DefaultPinboardWindow
	}

	w := &PinboardWorker{
		Worker: newWorker("pinboard", callback, opts...),
		client: client,
		store:  st,
		window: window,
	}
	w.work = w.doWork
	return w, nil
}

func (w *PinboardWorker) doWork(ctx context.Context) (Outcome, string, error) {
	lastUpdated, err := w.store.Get(ctx, store.KeyPinboardLastUpdated)
	if err != nil {
		return OutcomeRefreshed, "", err
	}

	if lastUpdated == "" {
		return w.refresh(ctx)
	}

	localUpdate, parseErr := time.Parse(time.RFC3339, lastUpdated)
	if parseErr != nil {
		return w.refresh(ctx)
	}

	upstreamUpdate, err := w.client.LastUpdate(ctx)
	if err != nil {
		return OutcomeRefreshed, "", err
	}

	if !upstreamUpdate.After(localUpdate) {
		return OutcomeNoUpdateNeeded, "no update needed for pinboard posts", nil
	}

	if elapsed := time.Since(localUpdate); elapsed < w.window {
		remaining := w.window - elapsed
		detail := fmt.Sprintf("Pinboard update throttled. Time remaining until next update: %d seconds", toSeconds(remaining))
		return OutcomeThrottled, detail, nil
	}

	return w.refresh(ctx)
}

func (w *PinboardWorker) refresh(ctx context.Context) (Outcome, string, error) {
	posts, err := w.client.AllPosts(ctx)
	if err != nil {
		return OutcomeRefreshed, "", err
	}

	// private bookmarks must never reach the cache
	shared := make([]pinboard.Post, 0, len(posts))
	for _, post := range posts {
		if post.Shared == "yes" {
			shared = append(shared, post)
		}
	}

	payload, err := json.Marshal(shared)
	if err != nil {
		return OutcomeRefreshed, "", fmt.Errorf("marshal posts: %w", err)
	}

	err = w.store.SetAll(ctx, map[string]string{
		store.KeyPinboardLastUpdated: time.Now().UTC().Format(time.RFC3339),
		store.KeyPinboardPosts:       string(payload),
	})
	if err != nil {
		return OutcomeRefreshed, "", err
	}

	return OutcomeRefreshed, "", nil
}
