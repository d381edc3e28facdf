package lastfm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"homeboard/internal/errs"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
		User:    "test-user",
		Timeout: time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestNew_RequiredParams(t *testing.T) {
	var reqErr *errs.RequiredParamError

	_, err := New(Config{User: "someone"})
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "cfg.APIKey", reqErr.Param)

	_, err = New(Config{APIKey: "key"})
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "cfg.User", reqErr.Param)
}

func TestAPICallURL(t *testing.T) {
	client := newTestClient(t, "https://ws.example.com/2.0/")

	callURL, err := client.apiCallURL("user.getRecentTracks", url.Values{"extended": {"1"}})
	require.NoError(t, err)

	parsed, err := url.Parse(callURL)
	require.NoError(t, err)

	query := parsed.Query()
	require.Equal(t, "user.getrecenttracks", query.Get("method"))
	require.Equal(t, "test-user", query.Get("user"))
	require.Equal(t, "test-key", query.Get("api_key"))
	require.Equal(t, "json", query.Get("format"))
	require.Equal(t, "1", query.Get("extended"))
}

func TestAPICallURL_MissingMethod(t *testing.T) {
	client := newTestClient(t, "https://ws.example.com/2.0/")

	var reqErr *errs.RequiredParamError
	_, err := client.apiCallURL("", nil)
	require.ErrorAs(t, err, &reqErr)
}

func TestRecentTracks(t *testing.T) {
	payload := `{"recenttracks":{"track":[{"name":"song"}]}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "user.getrecenttracks", r.URL.Query().Get("method"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	tracks, err := client.RecentTracks(context.Background())
	require.NoError(t, err)
	require.JSONEq(t, payload, string(tracks))
}

func TestRecentTracks_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.RecentTracks(context.Background())
	var respErr *errs.UnexpectedResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, http.StatusServiceUnavailable, respErr.Response.StatusCode)
}

func TestRecentTracks_NonObjectBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"just a string"`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.RecentTracks(context.Background())
	var respErr *errs.UnexpectedResponseError
	require.ErrorAs(t, err, &respErr)
}
