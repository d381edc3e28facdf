package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"homeboard/internal/errs"
	"homeboard/internal/store"
	"homeboard/internal/worker/mocks"
)

type LastfmWorkerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	client *mocks.MockLastfmClient
	store  *mocks.MockStore
	worker *LastfmWorker
}

func (s *LastfmWorkerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mocks.NewMockLastfmClient(s.ctrl)
	s.store = mocks.NewMockStore(s.ctrl)

	w, err := NewLastfmWorker(s.client, s.store, time.Second, func(error, string) {})
	s.Require().NoError(err)
	s.worker = w
}

func (s *LastfmWorkerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLastfmWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(LastfmWorkerTestSuite))
}

func (s *LastfmWorkerTestSuite) TestRequiredParams() {
	var reqErr *errs.RequiredParamError

	_, err := NewLastfmWorker(nil, s.store, time.Second, nil)
	s.ErrorAs(err, &reqErr)

	_, err = NewLastfmWorker(s.client, nil, time.Second, nil)
	s.ErrorAs(err, &reqErr)
}

func (s *LastfmWorkerTestSuite) TestColdCacheRefreshes() {
	ctx := context.Background()
	tracks := json.RawMessage(`{"recenttracks":{"track":[{"name":"one"}]}}`)

	s.store.EXPECT().Get(ctx, store.KeyLastfmLastUpdated).Return("", nil)
	s.client.EXPECT().RecentTracks(ctx).Return(tracks, nil)
	s.store.EXPECT().SetAll(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, kv map[string]string) error {
			s.Equal(string(tracks), kv[store.KeyLastfmTracks])
			s.NotEmpty(kv[store.KeyLastfmLastUpdated])
			_, parseErr := time.Parse(time.RFC3339, kv[store.KeyLastfmLastUpdated])
			s.NoError(parseErr)
			return nil
		},
	)

	outcome, _, err := s.worker.doWork(ctx)
	s.NoError(err)
	s.Equal(OutcomeRefreshed, outcome)
}

func (s *LastfmWorkerTestSuite) TestThrottledWithinWindow() {
	ctx := context.Background()
	lastUpdated := time.Now().UTC().Format(time.RFC3339)

	s.store.EXPECT().Get(ctx, store.KeyLastfmLastUpdated).Return(lastUpdated, nil)

	outcome, detail, err := s.worker.doWork(ctx)
	s.NoError(err)
	s.Equal(OutcomeThrottled, outcome)
	s.Contains(detail, "throttled")
}

func (s *LastfmWorkerTestSuite) TestRefreshesAfterWindow() {
	ctx := context.Background()
	lastUpdated := time.Now().Add(-time.Minute).UTC().Format(time.RFC3339)
	tracks := json.RawMessage(`{"recenttracks":{"track":[]}}`)

	s.store.EXPECT().Get(ctx, store.KeyLastfmLastUpdated).Return(lastUpdated, nil)
	s.client.EXPECT().RecentTracks(ctx).Return(tracks, nil)
	s.store.EXPECT().SetAll(ctx, gomock.Any()).Return(nil)

	outcome, _, err := s.worker.doWork(ctx)
	s.NoError(err)
	s.Equal(OutcomeRefreshed, outcome)
}

func (s *LastfmWorkerTestSuite) TestClientErrorPropagates() {
	ctx := context.Background()
	boom := errors.New("upstream down")

	s.store.EXPECT().Get(ctx, store.KeyLastfmLastUpdated).Return("", nil)
	s.client.EXPECT().RecentTracks(ctx).Return(nil, boom)

	_, _, err := s.worker.doWork(ctx)
	s.ErrorIs(err, boom)
}
