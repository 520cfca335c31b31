// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	paint "github.com/gogpu/ggpaint"
)

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	background gg.RGBA
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{background: gg.White}
}

// WithBackground sets the color Clear resets to. The alpha component is
// forced to 1: the canvas must stay opaque for snapshots to round-trip.
func WithBackground(c gg.RGBA) CanvasOption {
	return func(o *canvasOptions) {
		c.A = 1
		o.background = c
	}
}

// Canvas is a software-rendered Surface backed by a gg.Pixmap.
//
// Example:
//
//	c := surface.NewCanvas(800, 600)
//	defer c.Close()
//
//	_ = c.DrawSegment(0, 0, 100, 100, surface.BrushStyle(gg.Black, 3))
//	snap, _ := c.Capture()
type Canvas struct {
	width      int
	height     int
	pixmap     *gg.Pixmap
	dc         *gg.Context
	background gg.RGBA

	// closed tracks if Close has been called
	closed bool
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas cleared to its background.
// Non-positive dimensions are clamped to 1.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pm := gg.NewPixmap(width, height)
	c := &Canvas{
		width:      width,
		height:     height,
		pixmap:     pm,
		dc:         gg.NewContext(width, height, gg.WithPixmap(pm)),
		background: o.background,
	}
	c.Clear()
	return c
}

// NewCanvasFromSnapshot creates a canvas sized to s and renders s onto it.
func NewCanvasFromSnapshot(s paint.Snapshot, opts ...CanvasOption) (*Canvas, error) {
	if s.IsZero() {
		return nil, paint.ErrEmptySnapshot
	}
	c := NewCanvas(s.Width(), s.Height(), opts...)
	if err := c.Render(s); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// Width returns the canvas width.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height.
func (c *Canvas) Height() int {
	return c.height
}

// Background returns the color Clear resets to.
func (c *Canvas) Background() gg.RGBA {
	return c.background
}

// Clear fills the entire canvas with the background color.
func (c *Canvas) Clear() {
	if c.closed {
		return
	}
	c.dc.ClearPath()
	c.dc.ClearWithColor(c.background)
}

// DrawSegment strokes a straight segment.
func (c *Canvas) DrawSegment(x0, y0, x1, y1 float64, style Style) error {
	return c.DrawShape(func(dc *gg.Context) {
		dc.DrawLine(x0, y0, x1, y1)
	}, style)
}

// DrawShape strokes the outline built by trace.
func (c *Canvas) DrawShape(trace Tracer, style Style) error {
	if c.closed {
		return ErrClosed
	}
	if err := style.Validate(); err != nil {
		return err
	}

	prior := slices.Clone(c.pixmap.Data())

	c.dc.ClearPath()
	c.dc.SetStrokeBrush(gg.Solid(style.Color))
	c.dc.SetLineWidth(style.Width)
	c.dc.SetLineCap(style.Cap)
	c.dc.SetLineJoin(style.Join)
	trace(c.dc)

	err := c.dc.Stroke()
	c.flatten(prior)
	if err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	return nil
}

// Capture exports the canvas as a snapshot.
func (c *Canvas) Capture() (paint.Snapshot, error) {
	if c.closed {
		return paint.Snapshot{}, ErrClosed
	}
	return paint.Encode(c.pixmap.ToImage())
}

// Render replaces the canvas content with s.
//
// The image is drawn at the origin over a cleared background and clipped to
// the canvas, so an opaque snapshot of the canvas size is copied verbatim.
// The snapshot is decoded before any pixel changes, so a malformed
// snapshot leaves the canvas untouched.
func (c *Canvas) Render(s paint.Snapshot) error {
	if c.closed {
		return ErrClosed
	}
	img, err := s.Decode()
	if err != nil {
		return err
	}

	dst := c.pixels()
	c.dc.ClearPath()
	draw.Draw(dst, dst.Rect, image.NewUniform(c.background.Color()), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Rect, img, img.Bounds().Min, draw.Over)
	return nil
}

// Image returns a copy of the current canvas content.
func (c *Canvas) Image() *image.RGBA {
	if c.closed {
		return nil
	}
	return c.pixmap.ToImage()
}

// Close releases resources associated with the canvas.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.dc.Close()
	c.dc = nil
	c.pixmap = nil
	return err
}

// flatten composites every translucent pixel over the same pixel in prior
// and makes it opaque. The rasterizer writes straight (non-premultiplied)
// RGBA and may store a translucent stroke color as-is; flattening keeps the
// canvas opaque so snapshots round-trip exactly.
func (c *Canvas) flatten(prior []uint8) {
	data := c.pixmap.Data()
	for i := 0; i+3 < len(data); i += 4 {
		a := data[i+3]
		if a == 0xff {
			continue
		}
		fa := float64(a) / 255
		for k := 0; k < 3; k++ {
			v := float64(data[i+k])*fa + float64(prior[i+k])*(1-fa)
			data[i+k] = uint8(math.Min(v+0.5, 255))
		}
		data[i+3] = 0xff
	}
}

// pixels wraps the pixmap buffer as an *image.RGBA without copying.
func (c *Canvas) pixels() *image.RGBA {
	return &image.RGBA{
		Pix:    c.pixmap.Data(),
		Stride: c.width * 4,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}
