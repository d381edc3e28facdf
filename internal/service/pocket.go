package service

import (
	"context"
	"encoding/json"
	"time"

	"homeboard/internal/client/pocket"
	"homeboard/internal/domain"
	"homeboard/internal/store"
)

// DefaultPocketUserRateLimit is Pocket's per-user rate limit: 320 calls
// per hour, roughly one every 12 seconds.
const DefaultPocketUserRateLimit = 12 * time.Second

// PocketService reads cached Pocket articles out of the store and owns
// the authorization lifecycle: the OAuth token exchange, the persisted
// authorization hash, and starting/stopping the bound worker.
type PocketService struct {
	store         Store
	client        PocketTokenClient
	worker        WorkerController
	userRateLimit time.Duration
}

func NewPocketService(st Store, client PocketTokenClient, worker WorkerController, userRateLimit time.Duration) *PocketService {
	if userRateLimit <= 0 {
		userRateLimit = DefaultPocketUserRateLimit
	}
	return &PocketService{
		store:         st,
		client:        client,
		worker:        worker,
		userRateLimit: userRateLimit,
	}
}

// RequestToken begins the OAuth linking flow.
func (s *PocketService) RequestToken(ctx context.Context, redirectURI string) (string, error) {
	return s.client.RequestToken(ctx, redirectURI)
}

// AccessToken completes the OAuth linking flow.
func (s *PocketService) AccessToken(ctx context.Context, requestToken string) (*domain.Authorization, error) {
	return s.client.AccessToken(ctx, requestToken)
}

// Authorization returns the persisted authorization, or nil when the
// account is not linked.
func (s *PocketService) Authorization(ctx context.Context) (*domain.Authorization, error) {
	fields, err := s.store.GetHash(ctx, store.KeyPocketAuthorization)
	if err != nil {
		return nil, err
	}
	return domain.AuthorizationFromFields(fields), nil
}

// SetAuthorization persists the authorization obtained from the OAuth
// callback.
func (s *PocketService) SetAuthorization(ctx context.Context, auth domain.Authorization) error {
	return s.store.SetHash(ctx, store.KeyPocketAuthorization, auth.Fields())
}

// RemoveAuthorization deletes the persisted authorization. This is the
// authoritative signal for the worker to stop polling.
func (s *PocketService) RemoveAuthorization(ctx context.Context) error {
	return s.store.Delete(ctx, store.KeyPocketAuthorization)
}

// RemoveArticles clears the cached article list.
func (s *PocketService) RemoveArticles(ctx context.Context) error {
	return s.store.Delete(ctx, store.KeyPocketArticles)
}

// Articles returns the cached article list. A cold or unparseable cache
// yields nil, not an error.
func (s *PocketService) Articles(ctx context.Context) ([]pocket.Article, error) {
	payload, err := s.store.Get(ctx, store.KeyPocketArticles)
	if err != nil {
		return nil, err
	}

	var articles []pocket.Article
	if json.Unmarshal([]byte(payload), &articles) != nil {
		return nil, nil
	}

	return articles, nil
}

// StartWorker starts the bound worker at four times the per-user upstream
// rate limit; the interval is the only rate limiting the Pocket worker has.
func (s *PocketService) StartWorker() error {
	return s.worker.Start(4 * s.userRateLimit)
}

// StopWorker cancels the bound worker.
func (s *PocketService) StopWorker() {
	s.worker.Cancel()
}
