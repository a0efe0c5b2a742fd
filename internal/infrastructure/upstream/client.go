package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aoneretail/footwear-pos/pkg/apperror"
)

// Client is the HTTP client for the catalog/sales backend the POS fronts.
// Each call is a single round-trip; there are no automatic retries, and
// failures surface once to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a collaborator client against the given base URL.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperror.NewUpstreamError("GET "+path, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return apperror.NewUpstreamError("GET "+path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("upstream request",
		zap.String("method", http.MethodGet),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.NewUpstreamError("GET "+path, fmt.Errorf("status %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.NewUpstreamError("GET "+path, err)
	}
	return nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return apperror.NewUpstreamError("POST "+path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return apperror.NewUpstreamError("POST "+path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("upstream request",
		zap.String("method", http.MethodPost),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewUpstreamError("POST "+path, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperror.NewUpstreamError("POST "+path, fmt.Errorf("status %d: invalid response", resp.StatusCode))
	}
	return nil
}
