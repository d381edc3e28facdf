// Package service holds the read-side facades the HTTP layer consumes.
// Services only ever read the store; they never call the upstream APIs
// for payload data. The Pocket service additionally owns the OAuth token
// lifecycle and its worker's start/stop.
package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"homeboard/internal/domain"
)

// Store is the slice of the key-value store the services use: reads for
// the cached payloads, hash and delete access for the Pocket
// authorization lifecycle.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	GetHash(ctx context.Context, key string) (map[string]string, error)
	SetHash(ctx context.Context, key string, fields map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

// PocketTokenClient is the slice of the Pocket client used for the OAuth
// linking flow.
type PocketTokenClient interface {
	RequestToken(ctx context.Context, redirectURI string) (string, error)
	AccessToken(ctx context.Context, requestToken string) (*domain.Authorization, error)
}

// WorkerController is the start/stop surface of a polling worker.
type WorkerController interface {
	Start(interval time.Duration) error
	Cancel()
}
