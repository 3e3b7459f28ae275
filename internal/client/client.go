// ABOUTME: HTTP client for the Strikers Gear catalog API
// ABOUTME: Single request primitive with bearer auth and normalized failures

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// AuthPrefix marks endpoints usable before authentication
const AuthPrefix = "/auth/"

// DefaultTimeout bounds a single request
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer credential
type TokenSource interface {
	Token() string
}

// Requester is the request primitive shared by the client and its adapters
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Client is the API client for the catalog backend. It has no side effects
// beyond the HTTP request itself.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger used for transport diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a new API client with the given base URL.
// tokens may be nil for unauthenticated use.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// BaseURL returns the configured API address
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a request and decodes a successful body into out (if non-nil).
// Failures are *APIError (server answered non-2xx) or *TransportError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.Raw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid response from API: %w", err)
	}
	return nil
}

// Raw sends a request and returns the successful body unchanged.
// A body that is not valid JSON is returned as empty.
func (c *Client) Raw(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" && !strings.HasPrefix(path, AuthPrefix) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		terr := c.handleRequestError(ctx, method, url, err)
		c.logger.Error("API request failed", "method", method, "url", url, "error", err)
		return nil, terr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("Reading API response failed", "method", method, "url", url, "error", err)
		data = nil
	}
	raw := parseBody(data)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	c.logger.Debug("API request completed", "method", method, "path", path, "status", resp.StatusCode)
	return raw, nil
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, method, url string, err error) error {
	te := &TransportError{Method: method, URL: url, Err: err}
	switch ctx.Err() {
	case context.Canceled:
		te.msg = "request canceled"
	case context.DeadlineExceeded:
		te.msg = "request timed out"
	default:
		if isTimeout(err) {
			te.msg = "request timed out"
		} else {
			te.msg = fmt.Sprintf("cannot connect to API at %s", c.baseURL)
		}
	}
	return te
}

// parseBody returns data if it is valid JSON, otherwise an empty body
func parseBody(data []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil
	}
	return json.RawMessage(trimmed)
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	t, ok := err.(timeout)
	return ok && t.Timeout()
}
