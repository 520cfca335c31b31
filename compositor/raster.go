// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"context"
	"errors"
	"fmt"

	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/surface"
)

// RasterOption configures a Raster.
type RasterOption func(*Raster)

// WithRegistry makes the Raster resolve shapes from reg instead of the
// global registry.
func WithRegistry(reg *Registry) RasterOption {
	return func(r *Raster) {
		r.registry = reg
	}
}

// Raster is the in-process Compositor. It decodes the base snapshot onto a
// fresh surface.Canvas, strokes the shape with gg and captures the result.
type Raster struct {
	registry *Registry
}

var _ Compositor = (*Raster)(nil)

// NewRaster creates a Raster backed by the global shape registry.
func NewRaster(opts ...RasterOption) *Raster {
	r := &Raster{registry: globalRegistry}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Shapes returns the tags this Raster can draw.
func (r *Raster) Shapes() []string {
	return r.registry.Shapes()
}

// Validate checks req without rendering it.
func (r *Raster) Validate(req Request) error {
	_, _, err := r.prepare(req)
	return err
}

// Composite renders req.Shape onto req.Base.
func (r *Raster) Composite(ctx context.Context, req Request) (paint.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return paint.Snapshot{}, err
	}

	trace, style, err := r.prepare(req)
	if err != nil {
		return paint.Snapshot{}, err
	}

	canvas, err := surface.NewCanvasFromSnapshot(req.Base)
	if err != nil {
		return paint.Snapshot{}, &RenderError{Shape: req.Shape, Err: fmt.Errorf("%w: %w", ErrMalformedBase, err)}
	}
	defer func() {
		_ = canvas.Close()
	}()

	if err := canvas.DrawShape(trace, style); err != nil {
		return paint.Snapshot{}, &RenderError{Shape: req.Shape, Err: err}
	}

	out, err := canvas.Capture()
	if err != nil {
		return paint.Snapshot{}, &RenderError{Shape: req.Shape, Err: err}
	}

	paint.ComponentLogger("compositor").Debug("shape rendered",
		"shape", req.Shape, "geometry", req.Geometry(), "bytes", out.Len())
	return out, nil
}

// prepare validates req and resolves its tracer and stroke style.
func (r *Raster) prepare(req Request) (surface.Tracer, surface.Style, error) {
	fail := func(err error) (surface.Tracer, surface.Style, error) {
		return nil, surface.Style{}, &RenderError{Shape: req.Shape, Err: err}
	}

	factory, ok := r.registry.Lookup(req.Shape)
	if !ok {
		return fail(fmt.Errorf("%w: %q", ErrUnknownShape, req.Shape))
	}

	g := req.Geometry()
	if !g.Finite() {
		return fail(fmt.Errorf("%w: non-finite coordinates %+v", ErrInvalidGeometry, g))
	}
	if req.LineWidth < 1 || req.LineWidth > MaxLineWidth {
		return fail(fmt.Errorf("%w: line width %d outside [1, %d]", ErrInvalidGeometry, req.LineWidth, MaxLineWidth))
	}

	c, err := paint.ParseColor(req.Color)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrInvalidColor, err))
	}

	if req.Base.IsZero() {
		return fail(fmt.Errorf("%w: %w", ErrMalformedBase, paint.ErrEmptySnapshot))
	}

	return factory(g), surface.ShapeStyle(c, float64(req.LineWidth)), nil
}

// IsRenderError reports whether err is, or wraps, a *RenderError.
func IsRenderError(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}
