package service

import (
	"context"
	"encoding/json"

	"homeboard/internal/client/pinboard"
	"homeboard/internal/store"
)

// PinboardService reads cached Pinboard bookmarks out of the store.
type PinboardService struct {
	store Store
}

func NewPinboardService(st Store) *PinboardService {
	return &PinboardService{store: st}
}

// Posts returns the cached bookmark list. A cold or unparseable cache
// yields nil, not an error.
func (s *PinboardService) Posts(ctx context.Context) ([]pinboard.Post, error) {
	payload, err := s.store.Get(ctx, store.KeyPinboardPosts)
	if err != nil {
		return nil, err
	}

	var posts []pinboard.Post
	if json.Unmarshal([]byte(payload), &posts) != nil {
		return nil, nil
	}

	return posts, nil
}
