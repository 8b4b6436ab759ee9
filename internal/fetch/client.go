// Package fetch wraps outbound HTTP calls with a fixed timeout and collapses
// every failure mode (network error, non-2xx status, bad payload) into an
// absent result. Callers cannot tell "source down" apart from "no data",
// which is the contract every adapter is built on.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const DefaultTimeout = 15 * time.Second

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func New(timeout time.Duration, logger *slog.Logger) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) browserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7")
}

// Text fetches a page and returns its body. ok is false on any failure;
// a single attempt, no retries.
func (c *Client) Text(ctx context.Context, url string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}
	c.browserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("fetch failed", "url", url, "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("fetch non-2xx", "url", url, "status", resp.StatusCode)
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false
	}
	return string(body), true
}

// JSON fetches a JSON document into out. ok is false on any failure.
func (c *Client) JSON(ctx context.Context, url string, out any) bool {
	return c.GetJSON(ctx, url, nil, out)
}

// GetJSON is JSON with extra request headers (API keys etc).
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	c.browserHeaders(req)
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.doJSON(req, out)
}

// PostJSON posts a JSON body and decodes a JSON response into out.
func (c *Client) PostJSON(ctx context.Context, url string, headers map[string]string, body, out any) bool {
	payload, err := json.Marshal(body)
	if err != nil {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) bool {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("fetch failed", "url", req.URL.String(), "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("fetch non-2xx", "url", req.URL.String(), "status", resp.StatusCode)
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Debug("fetch decode failed", "url", req.URL.String(), "error", err)
		return false
	}
	return true
}
