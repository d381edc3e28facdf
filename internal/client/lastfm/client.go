// Package lastfm is a thin client for the Last.fm web API, scoped to a
// single user.
package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"homeboard/internal/errs"
)

const DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

// Config holds Last.fm client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	User    string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	user       string
}

// New creates a Last.fm client for the configured user.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &errs.RequiredParamError{Param: "cfg.APIKey", Type: "string"}
	}
	if cfg.User == "" {
		return nil, &errs.RequiredParamError{Param: "cfg.User", Type: "string"}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		user:       cfg.User,
	}, nil
}

// apiCallURL builds a fully formed API url for the given method, merging the
// required api_key/user/format params with any additional query params. The
// method name is lower-cased, which is how the Last.fm API expects it.
func (c *Client) apiCallURL(method string, additional url.Values) (string, error) {
	if method == "" {
		return "", &errs.RequiredParamError{Param: "method", Type: "string"}
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	query := url.Values{
		"method":  {strings.ToLower(method)},
		"user":    {c.user},
		"api_key": {c.apiKey},
		"format":  {"json"},
	}
	for key, values := range additional {
		query[key] = values
	}

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// RecentTracks fetches the user's recently scrobbled tracks. The response
// body is returned as-is; callers treat it as an opaque payload.
func (c *Client) RecentTracks(ctx context.Context) (json.RawMessage, error) {
	callURL, err := c.apiCallURL("user.getRecentTracks", url.Values{"extended": {"1"}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, callURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if !errs.IsOK(resp.StatusCode) || !isJSONObject(body) {
		return nil, &errs.UnexpectedResponseError{Response: errs.Snapshot(resp, body, "")}
	}

	return json.RawMessage(body), nil
}

func isJSONObject(body []byte) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(body, &obj) == nil
}
