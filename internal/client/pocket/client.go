// Package pocket is a client for the Pocket v3 web API, covering the OAuth
// linking flow and the article retrieve endpoint.
package pocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"homeboard/internal/domain"
	"homeboard/internal/errs"
)

const DefaultBaseURL = "https://getpocket.com/v3/"

// Config holds Pocket client configuration.
type Config struct {
	BaseURL     string
	ConsumerKey string
	Timeout     time.Duration
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	consumerKey string
}

// New creates a Pocket client for the registered consumer key.
func New(cfg Config) (*Client, error) {
	if cfg.ConsumerKey == "" {
		return nil, &errs.RequiredParamError{Param: "cfg.ConsumerKey", Type: "string"}
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
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		consumerKey: cfg.ConsumerKey,
	}, nil
}

// RequestToken begins the OAuth flow by fetching a request token. The
// redirectURI is where Pocket sends the user after granting or denying
// access.
func (c *Client) RequestToken(ctx context.Context, redirectURI string) (string, error) {
	if redirectURI == "" {
		return "", &errs.RequiredParamError{Param: "redirectURI", Type: "string"}
	}

	var result struct {
		Code string `json:"code"`
	}
	err := c.post(ctx, "oauth/request", map[string]any{
		"consumer_key": c.consumerKey,
		"redirect_uri": redirectURI,
	}, &result)
	if err != nil {
		return "", err
	}

	return result.Code, nil
}

// AccessToken completes the OAuth flow, exchanging a previously approved
// request token for an access token and the granting user's name.
func (c *Client) AccessToken(ctx context.Context, requestToken string) (*domain.Authorization, error) {
	if requestToken == "" {
		return nil, &errs.RequiredParamError{Param: "requestToken", Type: "string"}
	}

	var auth domain.Authorization
	err := c.post(ctx, "oauth/authorize", map[string]any{
		"consumer_key": c.consumerKey,
		"code":         requestToken,
	}, &auth)
	if err != nil {
		return nil, err
	}

	return &auth, nil
}

// RetrieveOptions are the filter/sort/pagination params passed through to
// the retrieve endpoint. Zero values are omitted from the request. See
// https://getpocket.com/developer/docs/v3/retrieve for semantics.
type RetrieveOptions struct {
	AccessToken string
	State       string // "unread", "archive", "all"
	Favorite    string // "0" or "1"
	Tag         string
	ContentType string // "article", "video", "image"
	Sort        string // "newest", "oldest", "title", "site"
	DetailType  string // "simple", "complete"
	Search      string
	Domain      string
	Since       int64
	Count       int
	Offset      int
}

func (o RetrieveOptions) params(consumerKey string) map[string]any {
	params := map[string]any{
		"consumer_key": consumerKey,
		"access_token": o.AccessToken,
	}

	optional := map[string]string{
		"state":       o.State,
		"favorite":    o.Favorite,
		"tag":         o.Tag,
		"contentType": o.ContentType,
		"sort":        o.Sort,
		"detailType":  o.DetailType,
		"search":      o.Search,
		"domain":      o.Domain,
	}
	for key, value := range optional {
		if value != "" {
			params[key] = value
		}
	}

	if o.Since > 0 {
		params["since"] = o.Since
	}
	if o.Count > 0 {
		params["count"] = o.Count
		if o.Offset > 0 {
			params["offset"] = o.Offset
		}
	}

	return params
}

// Retrieve fetches the user's articles. The endpoint returns articles keyed
// by item id; they are flattened to a slice here, re-sorted locally when a
// sort order was requested since map iteration discards the upstream order.
func (c *Client) Retrieve(ctx context.Context, opts RetrieveOptions) ([]Article, error) {
	if opts.AccessToken == "" {
		return nil, &errs.RequiredParamError{Param: "opts.AccessToken", Type: "string"}
	}

	var result struct {
		List json.RawMessage `json:"list"`
	}
	if err := c.post(ctx, "get", opts.params(c.consumerKey), &result); err != nil {
		return nil, err
	}

	articles, err := flattenList(result.List)
	if err != nil {
		return nil, err
	}

	if opts.Sort != "" {
		sortArticles(articles, opts.Sort)
	}

	return articles, nil
}

// flattenList converts the retrieve "list" value to a slice. Pocket sends a
// JSON object keyed by item id, except when there are no results, where it
// sends an empty array instead.
func flattenList(list json.RawMessage) ([]Article, error) {
	if len(list) == 0 {
		return nil, nil
	}

	var byID map[string]Article
	if err := json.Unmarshal(list, &byID); err == nil {
		articles := make([]Article, 0, len(byID))
		for _, article := range byID {
			articles = append(articles, article)
		}
		return articles, nil
	}

	var empty []json.RawMessage
	if err := json.Unmarshal(list, &empty); err == nil && len(empty) == 0 {
		return nil, nil
	}

	return nil, fmt.Errorf("unexpected retrieve list shape")
}

func sortArticles(articles []Article, order string) {
	var field func(a *Article) string
	desc := false

	switch order {
	case "newest":
		field = func(a *Article) string { return a.TimeCreated }
		desc = true
	case "oldest":
		field = func(a *Article) string { return a.TimeCreated }
	case "title":
		field = func(a *Article) string { return a.ResolvedTitle }
	default:
		field = func(a *Article) string { return a.ResolvedURL }
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if desc {
			return field(&articles[i]) > field(&articles[j])
		}
		return field(&articles[i]) < field(&articles[j])
	})
}

func (c *Client) post(ctx context.Context, method string, params map[string]any, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, method)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}

	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	// pocket servers choke unless these are set
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Accept", "application/json")
	req.Header.Set("Accept", "*/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if !errs.IsOK(resp.StatusCode) || json.Unmarshal(body, out) != nil {
		return &errs.UnexpectedResponseError{Response: errs.Snapshot(resp, body, string(payload))}
	}

	return nil
}
