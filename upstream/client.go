// Package upstream talks to the public tea-garden backend. All access is
// unauthenticated HTTP GET; schema tolerance lives in package normalize,
// this package owns transport, status handling and the fallback querying.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNotFound marks a 404 from the backend, so handlers can answer 404
// instead of a generic bad-gateway.
var ErrNotFound = errors.New("not found")

// Client is a GET-JSON client for the backend. A modest rate limit keeps the
// sequential fallback queue from hammering the legacy service.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:3000"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 25 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(20), 40),
		log:     log,
	}
}

// GetJSON fetches a backend path and decodes the body into generic JSON.
// A 401 on these public endpoints means the backend is misconfigured as
// non-public; it is logged for the operator and reported as a plain error,
// never retried with credentials.
func (c *Client) GetJSON(ctx context.Context, path string) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend call failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Warn("public endpoint answered 401; backend auth is misconfigured",
			zap.String("path", path))
		return nil, fmt.Errorf("backend 401 on public endpoint %s", path)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("backend non-2xx: %s, body: %s", resp.Status, string(data))
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode backend resp: %w", err)
	}
	return out, nil
}
