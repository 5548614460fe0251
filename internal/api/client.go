// Package api implements the HTTP client for the ParkNow backend.
//
// Every response from the backend is wrapped in the same envelope:
//
//	{"statusCode": 200, "message": "...", "data": ...}
//
// A call succeeds when the HTTP status is 2xx and the envelope statusCode is
// 200 or 201; anything else surfaces the envelope message as an *Error.
// Transport failures are mapped to ErrUnreachable. A 401 response clears the
// stored token and notifies every registered session-expiry handler.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL string
	http    *http.Client

	mu          sync.RWMutex
	token       string
	deviceToken string
	onExpired   []func()
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithDeviceToken sets the device token sent with authenticated bookings.
func WithDeviceToken(token string) Option {
	return func(c *Client) { c.deviceToken = token }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http = &http.Client{Timeout: d}
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, errors.New("api: empty base URL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetToken stores the bearer token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Authenticated reports whether a bearer token is currently stored.
func (c *Client) Authenticated() bool {
	return c.Token() != ""
}

// Logout drops the stored token. It does not call the backend.
func (c *Client) Logout() {
	c.SetToken("")
}

func (c *Client) DeviceToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceToken
}

// OnSessionExpired registers a handler invoked whenever the backend answers
// 401. Handlers run synchronously, in registration order, on the goroutine
// that made the failing call.
func (c *Client) OnSessionExpired(fn func()) {
	c.mu.Lock()
	c.onExpired = append(c.onExpired, fn)
	c.mu.Unlock()
}

func (c *Client) notifyExpired() {
	c.mu.Lock()
	c.token = ""
	handlers := make([]func(), len(c.onExpired))
	copy(handlers, c.onExpired)
	c.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// get issues a GET request and decodes the envelope data into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post issues a POST request with a JSON body and decodes the envelope data
// into out. out may be nil when the caller only cares about success.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.notifyExpired()
		return ErrSessionExpired
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300 &&
		(env.StatusCode == http.StatusOK || env.StatusCode == http.StatusCreated)
	if !ok {
		return &Error{StatusCode: env.StatusCode, Message: env.Message}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		// Success without data means the backend rejected the request but
		// kept the 2xx status; surface the message.
		return &Error{StatusCode: env.StatusCode, Message: env.Message}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}
