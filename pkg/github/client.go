package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cemremete/gitfolio/pkg/errors"
)

const (
	httpTimeout = 30 * time.Second

	// acceptHeader is the fixed media type sent with every request.
	acceptHeader = "application/vnd.github.v3+json"

	// defaultPageDelay is the courtesy pause between repository pages.
	defaultPageDelay = 100 * time.Millisecond
)

// Client provides access to the public GitHub API with local quota tracking.
// Pass an empty token for anonymous requests (lower rate limits).
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *RateLimiter

	// pageDelay paces sequential page requests. It is a courtesy delay,
	// not a correctness requirement; tests zero it.
	pageDelay time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets a bearer token for authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithPageDelay overrides the inter-page delay. Used by tests.
func WithPageDelay(d time.Duration) Option {
	return func(c *Client) { c.pageDelay = d }
}

// NewClient creates a GitHub API client with its own rate limiter.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: httpTimeout},
		baseURL:    "https://api.github.com",
		limiter:    NewRateLimiter(),
		pageDelay:  defaultPageDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Limiter exposes the client's rate limiter, e.g. for status display.
func (c *Client) Limiter() *RateLimiter {
	return c.limiter
}

// FetchUser retrieves a user's public identity.
func (c *Client) FetchUser(ctx context.Context, username string) (*User, error) {
	var user User
	url := fmt.Sprintf("%s/users/%s", c.baseURL, username)
	if err := c.get(ctx, url, &user); err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return nil, errors.New(errors.ErrCodeNotFound, "user not found: %s", username)
		}
		return nil, err
	}
	return &user, nil
}

// get issues a single GET request and decodes the JSON response into v.
//
// The limiter is consulted before dispatch and reconciled after every
// response, success or failure. Both sides are necessary: the pre-check
// avoids wasted calls, the post-record keeps local state accurate.
func (c *Client) get(ctx context.Context, url string, v any) error {
	if err := c.limiter.Check(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create request")
	}
	req.Header.Set("Accept", acceptHeader)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "request %s", url)
	}
	defer resp.Body.Close()

	c.limiter.Record(resp.Header)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "resource not found")
	case resp.StatusCode == http.StatusForbidden:
		// The remote side may throttle before the local counter would.
		return &errors.RateLimitedError{RetryAfter: c.limiter.RetryAfter()}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.New(errors.ErrCodeRemote, "GitHub API error (%d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeRemote, err, "decode response")
	}
	return nil
}

// sleep pauses for d unless the context is cancelled first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
