package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return New(rdb), mr
}

func TestGet_AbsentKey(t *testing.T) {
	st, _ := newTestStore(t)

	val, err := st.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.Empty(t, val)
}

func TestSetAndGet(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "lastfm:tracks", `{"recenttracks":{}}`))

	val, err := st.Get(ctx, "lastfm:tracks")
	require.NoError(t, err)
	require.Equal(t, `{"recenttracks":{}}`, val)
}

func TestSetAll(t *testing.T) {
	st, mr := newTestStore(t)

	err := st.SetAll(context.Background(), map[string]string{
		KeyPinboardPosts:       `[]`,
		KeyPinboardLastUpdated: "2026-08-01T12:00:00Z",
	})
	require.NoError(t, err)

	posts, err := mr.Get(KeyPinboardPosts)
	require.NoError(t, err)
	require.Equal(t, `[]`, posts)

	lastUpdated, err := mr.Get(KeyPinboardLastUpdated)
	require.NoError(t, err)
	require.Equal(t, "2026-08-01T12:00:00Z", lastUpdated)
}

func TestDelete(t *testing.T) {
	st, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(KeyPocketArticles, `[]`))
	mr.HSet(KeyPocketAuthorization, "accessToken", "token")

	require.NoError(t, st.Delete(ctx, KeyPocketArticles, KeyPocketAuthorization))
	require.False(t, mr.Exists(KeyPocketArticles))
	require.False(t, mr.Exists(KeyPocketAuthorization))
}

func TestDelete_NoKeysIsNoOp(t *testing.T) {
	st, _ := newTestStore(t)
	require.NoError(t, st.Delete(context.Background()))
}

func TestHash(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	fields, err := st.GetHash(ctx, KeyPocketAuthorization)
	require.NoError(t, err)
	require.Nil(t, fields)

	err = st.SetHash(ctx, KeyPocketAuthorization, map[string]string{
		"accessToken": "token-123",
		"username":    "reader",
	})
	require.NoError(t, err)

	fields, err = st.GetHash(ctx, KeyPocketAuthorization)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"accessToken": "token-123",
		"username":    "reader",
	}, fields)
}
