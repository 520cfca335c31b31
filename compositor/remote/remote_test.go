// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package remote

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/compositor"
	"github.com/gogpu/ggpaint/surface"
)

func blankBase(t *testing.T, w, h int) paint.Snapshot {
	t.Helper()
	c := surface.NewCanvas(w, h)
	defer c.Close()
	s, err := c.Capture()
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	return s
}

func newServer(t *testing.T, comp compositor.Compositor) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(NewHandler(comp))
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return srv, c
}

func TestClientMatchesLocalRaster(t *testing.T) {
	_, c := newServer(t, compositor.NewRaster())
	req := compositor.Request{
		Shape:  compositor.ShapeRect,
		StartX: 10, StartY: 10,
		EndX: 50, EndY: 40,
		Color:     "#ff0000",
		LineWidth: 3,
		Base:      blankBase(t, 100, 80),
	}

	got, err := c.Composite(context.Background(), req)
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}
	want, err := compositor.NewRaster().Composite(context.Background(), req)
	if err != nil {
		t.Fatalf("local Composite() error = %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("remote result %v differs from local %v", got, want)
	}
}

func TestClientRenderErrors(t *testing.T) {
	_, c := newServer(t, compositor.NewRaster())
	base := blankBase(t, 20, 20)

	tests := []struct {
		name string
		req  compositor.Request
		want error
	}{
		{"unknown shape", compositor.Request{Shape: "star", EndX: 5, EndY: 5, Color: "#000", LineWidth: 1, Base: base}, compositor.ErrUnknownShape},
		{"bad color", compositor.Request{Shape: "line", EndX: 5, EndY: 5, Color: "red", LineWidth: 1, Base: base}, compositor.ErrInvalidColor},
		{"zero width", compositor.Request{Shape: "line", EndX: 5, EndY: 5, Color: "#000", LineWidth: 0, Base: base}, compositor.ErrInvalidGeometry},
		{"empty base", compositor.Request{Shape: "line", EndX: 5, EndY: 5, Color: "#000", LineWidth: 1}, compositor.ErrMalformedBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Composite(context.Background(), tt.req)
			var re *compositor.RenderError
			if !errors.As(err, &re) {
				t.Fatalf("Composite() error = %v, want *RenderError", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Composite() error = %v, want %v", err, tt.want)
			}
			if re.Shape != tt.req.Shape {
				t.Errorf("Shape = %q, want %q", re.Shape, tt.req.Shape)
			}
		})
	}
}

func TestClientRejectsNonFiniteLocally(t *testing.T) {
	var calls atomic.Int32
	comp := compositor.Func(func(ctx context.Context, req compositor.Request) (paint.Snapshot, error) {
		calls.Add(1)
		return req.Base, nil
	})
	_, c := newServer(t, comp)

	_, err := c.Composite(context.Background(), compositor.Request{
		Shape: "line", StartX: math.NaN(), EndX: 1, Color: "#000", LineWidth: 1,
		Base: blankBase(t, 4, 4),
	})
	if !errors.Is(err, compositor.ErrInvalidGeometry) {
		t.Errorf("error = %v, want ErrInvalidGeometry", err)
	}
	if calls.Load() != 0 {
		t.Errorf("server called %d times, want 0", calls.Load())
	}
}

func TestServerBadJSON(t *testing.T) {
	srv, _ := newServer(t, compositor.NewRaster())

	resp, err := srv.Client().Post(srv.URL+CompositePath, "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestServerMalformedBaseURL(t *testing.T) {
	srv, _ := newServer(t, compositor.NewRaster())

	body := `{"shape":"line","end_x":3,"end_y":3,"color":"#000","line_width":1,"base":"data:image/png;base64,!!!"}`
	resp, err := srv.Client().Post(srv.URL+CompositePath, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestServerInternalError(t *testing.T) {
	comp := compositor.Func(func(context.Context, compositor.Request) (paint.Snapshot, error) {
		return paint.Snapshot{}, errors.New("disk on fire")
	})
	_, c := newServer(t, comp)

	_, err := c.Composite(context.Background(), compositor.Request{
		Shape: "line", EndX: 1, Color: "#000", LineWidth: 1, Base: blankBase(t, 4, 4),
	})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
	if te.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", te.StatusCode)
	}
	if !strings.Contains(te.Error(), "disk on fire") {
		t.Errorf("Error() = %q, want remote message", te.Error())
	}
	if compositor.IsRenderError(err) {
		t.Error("IsRenderError() = true for transport failure")
	}
}

func TestClientSendsRequestID(t *testing.T) {
	var seen atomic.Value
	comp := compositor.Func(func(ctx context.Context, req compositor.Request) (paint.Snapshot, error) {
		seen.Store(middleware.GetReqID(ctx))
		return req.Base, nil
	})
	_, c := newServer(t, comp)

	if _, err := c.Composite(context.Background(), compositor.Request{
		Shape: "line", EndX: 1, Color: "#000", LineWidth: 1, Base: blankBase(t, 4, 4),
	}); err != nil {
		t.Fatalf("Composite() error = %v", err)
	}
	id, _ := seen.Load().(string)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("request id %q is not a uuid: %v", id, err)
	}
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	comp := compositor.Func(func(ctx context.Context, req compositor.Request) (paint.Snapshot, error) {
		select {
		case <-ctx.Done():
		case <-release:
		}
		return req.Base, nil
	})
	srv := httptest.NewServer(NewHandler(comp))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c, err := NewClient(srv.URL, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	_, err = c.Composite(context.Background(), compositor.Request{
		Shape: "line", EndX: 1, Color: "#000", LineWidth: 1, Base: blankBase(t, 4, 4),
	})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
	if te.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", te.StatusCode)
	}
}

func TestShapesAndHealth(t *testing.T) {
	srv, c := newServer(t, compositor.NewRaster())

	shapes, err := c.Shapes(context.Background())
	if err != nil {
		t.Fatalf("Shapes() error = %v", err)
	}
	for _, want := range []string{compositor.ShapeLine, compositor.ShapeRect, compositor.ShapeEllipse} {
		if !slices.Contains(shapes, want) {
			t.Errorf("Shapes() = %v, missing %q", shapes, want)
		}
	}

	resp, err := srv.Client().Get(srv.URL + HealthPath)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
}

func TestNewClientURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"http://localhost:8088", "http://localhost:8088", false},
		{"https://paint.example/", "https://paint.example", false},
		{"localhost:8088", "", true},
		{"ftp://host", "", true},
		{"http://", "", true},
		{"://bad", "", true},
	}
	for _, tt := range tests {
		c, err := NewClient(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadURL) {
				t.Errorf("NewClient(%q) error = %v, want ErrBadURL", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewClient(%q) error = %v", tt.in, err)
			continue
		}
		if c.BaseURL() != tt.want {
			t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), tt.want)
		}
	}
}
