package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const contentTypeJSON = "application/json"

// Client sends JSON requests to the backend.
type Client struct {
	baseURL      string
	headers      http.Header
	interceptors []Interceptor
	base         http.RoundTripper
	timeout      time.Duration
	httpClient   *http.Client
}

// New creates a client for baseURL. Configuration is fixed once New returns.
func New(baseURL string, options ...Option) *Client {
	ret := &Client{
		baseURL: baseURL,
		headers: http.Header{},
	}
	ret.headers.Set("Content-Type", contentTypeJSON)
	ret.headers.Set("Accept", contentTypeJSON)
	for _, opt := range options {
		opt(ret)
	}
	ret.httpClient = &http.Client{
		Transport: NewTransport(ret.base, ret.interceptors...),
		Timeout:   ret.timeout,
	}
	return ret
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with an optional JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Do sends one request. A nil body sends no payload; a nil out discards the response body.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %v %v request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, joinURL(c.baseURL, path), reader)
	if err != nil {
		return fmt.Errorf("failed to create %v %v request: %w", method, path, err)
	}
	for name, values := range c.headers {
		if body == nil && name == "Content-Type" {
			continue
		}
		req.Header[name] = append([]string(nil), values...)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Status: resp.StatusCode, Err: err}
	}
	if !isSuccess(resp.StatusCode) {
		return newHTTPError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &Error{Kind: KindDecode, Status: resp.StatusCode, Err: fmt.Errorf("empty response body for %v %v", method, path)}
	}
	if err = json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindDecode, Status: resp.StatusCode, Body: data, Err: err}
	}
	return nil
}
