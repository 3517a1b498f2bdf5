// Package fetch retrieves recipe pages over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrUnavailable wraps transport failures, timeouts and non-2xx statuses.
	ErrUnavailable = errors.New("link unavailable")
	// ErrUnreadableBody is returned when the response body cannot be read in full.
	ErrUnreadableBody = errors.New("unreadable response body")
	// ErrTooLarge is returned when the body exceeds MaxBodyBytes.
	ErrTooLarge = errors.New("response body too large")
)

const (
	DefaultTimeout      = 10 * time.Second
	DefaultMaxBodyBytes = 5 << 20
)

// Fetcher performs a plain GET and returns the response body.
type Fetcher interface {
	Get(ctx context.Context, link string) ([]byte, error)
}

// Client is the Fetcher backed by net/http.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds each request, body read included. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxBodyBytes caps the body size. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// NewClient creates a Client with the given limits.
func NewClient(timeout time.Duration, maxBodyBytes int64, userAgent string) *Client {
	return &Client{
		HTTPClient:   &http.Client{},
		UserAgent:    userAgent,
		Timeout:      timeout,
		MaxBodyBytes: maxBodyBytes,
	}
}

// Get fetches link. It does not retry.
func (c *Client) Get(ctx context.Context, link string) ([]byte, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported URL scheme %q", ErrUnavailable, u.Scheme)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: new request: %v", ErrUnavailable, err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	limit := c.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: reading body: %v", ErrUnavailable, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadableBody, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
