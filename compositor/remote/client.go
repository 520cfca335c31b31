// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package remote

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
	"time"

	"github.com/google/uuid"

	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/compositor"
)

// DefaultTimeout bounds a single compositor call.
const DefaultTimeout = 30 * time.Second

// maxReplyBytes bounds how much of a reply body the client reads.
const maxReplyBytes = 64 << 20

// ErrBadURL is returned by NewClient for a base URL that is not absolute
// http or https.
var ErrBadURL = errors.New("remote: base URL must be absolute http or https")

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each call. Zero or negative disables the bound; the
// caller's context still applies.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// Client is a compositor.Compositor that delegates to a remote service.
// It is safe for concurrent use.
type Client struct {
	base    string
	http    *http.Client
	timeout time.Duration
}

var _ compositor.Compositor = (*Client)(nil)

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadURL, baseURL)
	}

	c := &Client{
		base:    strings.TrimRight(u.String(), "/"),
		http:    http.DefaultClient,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized service URL.
func (c *Client) BaseURL() string {
	return c.base
}

// Composite sends req to the service. Render failures reported by the
// service are returned as *compositor.RenderError; anything else is a
// *TransportError.
func (c *Client) Composite(ctx context.Context, req compositor.Request) (paint.Snapshot, error) {
	// JSON has no encoding for NaN or Inf.
	if !req.Geometry().Finite() {
		return paint.Snapshot{}, &compositor.RenderError{
			Shape: req.Shape,
			Err:   fmt.Errorf("%w: non-finite coordinates", compositor.ErrInvalidGeometry),
		}
	}

	body, err := json.Marshal(encodeRequest(req))
	if err != nil {
		return paint.Snapshot{}, c.transportErr("composite", CompositePath, 0, err)
	}

	var reply compositeResponse
	if err := c.do(ctx, "composite", http.MethodPost, CompositePath, req.Shape, body, &reply); err != nil {
		return paint.Snapshot{}, err
	}

	snap, err := paint.ParseDataURL(reply.Image)
	if err != nil {
		return paint.Snapshot{}, c.transportErr("composite", CompositePath, http.StatusOK, err)
	}
	return snap, nil
}

// Shapes asks the service which shape tags it can draw.
func (c *Client) Shapes(ctx context.Context) ([]string, error) {
	var reply shapesResponse
	if err := c.do(ctx, "shapes", http.MethodGet, ShapesPath, "", nil, &reply); err != nil {
		return nil, err
	}
	return reply.Shapes, nil
}

func (c *Client) do(ctx context.Context, op, method, path, shape string, body []byte, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	hreq, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return c.transportErr(op, path, 0, err)
	}
	id := uuid.NewString()
	hreq.Header.Set("X-Request-Id", id)
	hreq.Header.Set("Accept", "application/json")
	if body != nil {
		hreq.Header.Set("Content-Type", "application/json")
	}

	paint.ComponentLogger("remote").Debug("call", "op", op, "request_id", id, "shape", shape)

	resp, err := c.http.Do(hreq)
	if err != nil {
		return c.transportErr(op, path, 0, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return c.transportErr(op, path, resp.StatusCode, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.Unmarshal(raw, out); err != nil {
			return c.transportErr(op, path, resp.StatusCode, err)
		}
		return nil
	case http.StatusUnprocessableEntity:
		var e errorResponse
		if err := json.Unmarshal(raw, &e); err != nil {
			return c.transportErr(op, path, resp.StatusCode, err)
		}
		return &compositor.RenderError{Shape: shape, Err: remoteCause(e)}
	default:
		return c.transportErr(op, path, resp.StatusCode, replyCause(raw))
	}
}

func (c *Client) transportErr(op, path string, status int, err error) error {
	return &TransportError{Op: op, URL: c.base + path, StatusCode: status, Err: err}
}

// remoteCause rebuilds a render error cause so errors.Is matches the
// sentinel the server saw.
func remoteCause(e errorResponse) error {
	if sentinel := compositor.KindError(e.Kind); sentinel != nil {
		return fmt.Errorf("%w (remote: %s)", sentinel, e.Error)
	}
	return errors.New(e.Error)
}

func replyCause(raw []byte) error {
	var e errorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Error != "" {
		return errors.New(e.Error)
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		msg = "empty reply"
	}
	return errors.New(msg)
}
