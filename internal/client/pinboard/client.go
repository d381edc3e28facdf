// Package pinboard is a thin client for the Pinboard v1 web API.
package pinboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"homeboard/internal/errs"
)

const DefaultBaseURL = "https://api.pinboard.in/v1/"

// Config holds Pinboard client configuration.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
}

// New creates a Pinboard client authenticated by API token.
func New(cfg Config) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, &errs.RequiredParamError{Param: "cfg.APIToken", Type: "string"}
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
		apiToken:   cfg.APIToken,
	}, nil
}

// apiCallURL appends the method path to the API base and attaches the
// auth_token and format params.
func (c *Client) apiCallURL(method string) (string, error) {
	if method == "" {
		return "", &errs.RequiredParamError{Param: "method", Type: "string"}
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	u.Path = u.Path + method
	u.RawQuery = url.Values{
		"auth_token": {c.apiToken},
		"format":     {"json"},
	}.Encode()

	return u.String(), nil
}

// AllPosts fetches every bookmark on the account. Note this endpoint carries
// Pinboard's strictest rate limit; callers are expected to throttle.
func (c *Client) AllPosts(ctx context.Context) ([]Post, error) {
	body, resp, err := c.get(ctx, "posts/all")
	if err != nil {
		return nil, err
	}

	var posts []Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, &errs.UnexpectedResponseError{Response: errs.Snapshot(resp, body, "")}
	}

	return posts, nil
}

// LastUpdate fetches the time bookmarks were last modified upstream. This is
// the cheap metadata call used to decide whether AllPosts is worth making.
func (c *Client) LastUpdate(ctx context.Context) (time.Time, error) {
	body, resp, err := c.get(ctx, "posts/update")
	if err != nil {
		return time.Time{}, err
	}

	var payload struct {
		UpdateTime string `json:"update_time"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return time.Time{}, &errs.UnexpectedResponseError{Response: errs.Snapshot(resp, body, "")}
	}

	updated, err := time.Parse(time.RFC3339, payload.UpdateTime)
	if err != nil {
		return time.Time{}, &errs.UnexpectedResponseError{Response: errs.Snapshot(resp, body, "")}
	}

	return updated, nil
}

func (c *Client) get(ctx context.Context, method string) ([]byte, *http.Response, error) {
	callURL, err := c.apiCallURL(method)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, callURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	if !errs.IsOK(resp.StatusCode) {
		return nil, nil, &errs.UnexpectedResponseError{Response: errs.Snapshot(resp, body, "")}
	}

	return body, resp, nil
}
