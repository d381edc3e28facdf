package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"homeboard/internal/client/pocket"
	"homeboard/internal/domain"
	"homeboard/internal/errs"
	"homeboard/internal/store"
)

// maxPocketArticles caps the persisted article list. Pocket payloads are
// beefy; unbounded retention risks running the store out of memory.
const maxPocketArticles = 10

// PocketWorker polls Pocket for archived articles. Unlike the other
// workers it is authorization-gated rather than time-gated: losing the
// stored authorization permanently stops the polling loop, and rate
// limiting is enforced by the interval the worker is started with.
type PocketWorker struct {
	*Worker
	client PocketClient
	store  Store
}

func NewPocketWorker(client PocketClient, st Store, callback Callback, opts ...Option) (*PocketWorker, error) {
	if client == nil {
		return nil, &errs.RequiredParamError{Param: "client", Type: "worker.PocketClient"}
	}
	if st == nil {
		return nil, &errs.RequiredParamError{Param: "st", Type: "worker.Store"}
	}

	w := &PocketWorker{
		Worker: newWorker("pocket", callback, opts...),
		client: client,
		store:  st,
	}
	w.work = w.doWork
	return w, nil
}

func (w *PocketWorker) doWork(ctx context.Context) (Outcome, string, error) {
	fields, err := w.store.GetHash(ctx, store.KeyPocketAuthorization)
	if err != nil {
		return OutcomeRefreshed, "", err
	}

	auth := domain.AuthorizationFromFields(fields)
	if auth == nil {
		// authorization has been revoked; polling without a token would
		// only produce upstream auth errors
		w.Cancel()
		return OutcomeCancelled, "worker cancelled; authorization not available", nil
	}

	articles, err := w.client.Retrieve(ctx, pocket.RetrieveOptions{
		AccessToken: auth.AccessToken,
		State:       "archive",
		DetailType:  "complete",
	})
	if err != nil {
		return OutcomeRefreshed, "", err
	}

	kept := make([]pocket.Article, 0, len(articles))
	for _, article := range articles {
		if !article.HasTag("private") {
			kept = append(kept, article)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return timeReadValue(&kept[i]) > timeReadValue(&kept[j])
	})

	if len(kept) > maxPocketArticles {
		kept = kept[:maxPocketArticles]
	}

	payload, err := json.Marshal(kept)
	if err != nil {
		return OutcomeRefreshed, "", fmt.Errorf("marshal articles: %w", err)
	}

	if err := w.store.Set(ctx, store.KeyPocketArticles, string(payload)); err != nil {
		return OutcomeRefreshed, "", err
	}

	return OutcomeRefreshed, "", nil
}

func timeReadValue(a *pocket.Article) int64 {
	v, err := strconv.ParseInt(a.TimeRead, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
