// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package client is the typed HTTP client for the content API. Every
// method issues exactly one request and decodes the {success, data}
// envelope. The client holds no cache and no mutable state; WithToken
// and WithClientIP return copies carrying per-request identity.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bridalstudio/internal/models"
)

// DefaultTimeout bounds every call, on top of the caller's context.
const DefaultTimeout = 5 * time.Second

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// Client calls the content API.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	visitor string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of the client that authenticates as the
// session identified by token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// WithClientIP returns a copy of the client that reports ip as the
// visitor's address in X-Forwarded-For, so the API can rate-limit logins
// per visitor rather than per site server.
func (c *Client) WithClientIP(ip string) *Client {
	cp := *c
	cp.visitor = ip
	return &cp
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call performs one JSON request and decodes the envelope's data into T.
// A nil body sends no payload.
func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, &Error{Op: method + " " + path, Kind: ErrMalformed, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	return send[T](ctx, c, method, path, reader, contentType)
}

// send performs the request and classifies the outcome.
func send[T any](ctx context.Context, c *Client, method, path string, body io.Reader, contentType string) (T, error) {
	var zero T
	op := method + " " + path

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return zero, &Error{Op: op, Kind: ErrTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.visitor != "" {
		req.Header.Set("X-Forwarded-For", c.visitor)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, &Error{Op: op, Kind: ErrTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return zero, &Error{Op: op, Status: resp.StatusCode, Kind: ErrTransport, Err: fmt.Errorf("read body: %w", err)}
	}

	var env models.Envelope[T]
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &Error{Op: op, Status: resp.StatusCode, Kind: ErrStatus}
		if resp.StatusCode == http.StatusNotFound {
			e.Kind = ErrNotFound
		}
		if decodeErr == nil {
			e.Message = env.Message
		}
		return zero, e
	}

	if decodeErr != nil {
		return zero, &Error{Op: op, Status: resp.StatusCode, Kind: ErrMalformed, Err: decodeErr}
	}
	if !env.Success {
		return zero, &Error{Op: op, Status: resp.StatusCode, Kind: ErrUnsuccessful, Message: env.Message}
	}
	return env.Data, nil
}
