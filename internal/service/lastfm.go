package service

import (
	"context"
	"encoding/json"

	"homeboard/internal/store"
)

// LastfmService reads cached Last.fm data out of the store.
type LastfmService struct {
	store Store
}

func NewLastfmService(st Store) *LastfmService {
	return &LastfmService{store: st}
}

// RecentTracks returns the cached track list, unwrapped from Last.fm's
// recenttracks.track envelope. A cold or unparseable cache yields nil,
// not an error.
func (s *LastfmService) RecentTracks(ctx context.Context) ([]json.RawMessage, error) {
	payload, err := s.store.Get(ctx, store.KeyLastfmTracks)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		RecentTracks struct {
			Track []json.RawMessage `json:"track"`
		} `json:"recenttracks"`
	}
	if json.Unmarshal([]byte(payload), &envelope) != nil {
		return nil, nil
	}

	return envelope.RecentTracks.Track, nil
}
