package worker

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"homeboard/internal/client/pinboard"
	"homeboard/internal/client/pocket"
)

// Store is the slice of the key-value store the workers write through.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetAll(ctx context.Context, kv map[string]string) error
	GetHash(ctx context.Context, key string) (map[string]string, error)
}

// LastfmClient fetches recent track data from Last.fm.
type LastfmClient interface {
	RecentTracks(ctx context.Context) (json.RawMessage, error)
}

// PinboardClient fetches bookmark data from Pinboard.
type PinboardClient interface {
	AllPosts(ctx context.Context) ([]pinboard.Post, error)
	LastUpdate(ctx context.Context) (time.Time, error)
}

// PocketClient fetches articles from Pocket on behalf of an authorized user.
type PocketClient interface {
	Retrieve(ctx context.Context, opts pocket.RetrieveOptions) ([]pocket.Article, error)
}
