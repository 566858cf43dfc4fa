package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the development backend address, matching the
// backend's default bind.
const DefaultBaseURL = "http://localhost:8000"

const defaultTimeout = 15 * time.Second

// Client is the HTTP client for the trivia backend. All request/response
// shapes follow the backend's envelope convention: every body carries an
// "ok" flag and, on failure, an "error" message.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithToken installs a bearer-token source consulted on every request.
// Requests go out unauthenticated while it returns "".
func WithToken(fn func() string) ClientOption {
	return func(c *Client) { c.token = fn }
}

// New creates a Client for the backend at baseURL. An empty baseURL falls
// back to DefaultBaseURL.
func New(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend address the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// envelope is the common response wrapper.
type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// do issues one request and decodes the enveloped response into out
// (which may be nil when only the envelope matters).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	case resp.StatusCode >= 400:
		return &APIError{StatusCode: resp.StatusCode, Message: envelopeError(raw)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "malformed response body"}
	}
	if !env.OK {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: "unexpected response shape"}
		}
	}
	return nil
}

func envelopeError(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Error
}

// ReportError sends a client-side error to the backend log sink. Failures
// are swallowed: error reporting must never produce its own errors.
func (c *Client) ReportError(ctx context.Context, message string, status int, url string) {
	payload := map[string]any{
		"timestamp":   time.Now().UTC(),
		"message":     message,
		"status":      status,
		"status_text": http.StatusText(status),
		"url":         url,
	}
	_ = c.do(ctx, http.MethodPost, "/logs/error", payload, nil)
}
