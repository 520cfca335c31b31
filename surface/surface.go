// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"

	"github.com/gogpu/gg"

	paint "github.com/gogpu/ggpaint"
)

// Surface is the drawing target of an editing session.
//
// Implementations may rasterize in software, on a GPU, or into a widget
// toolkit's native canvas. The editing session only relies on the contract
// below.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear resets every pixel to the surface background.
	Clear()

	// DrawSegment strokes a straight segment from (x0, y0) to (x1, y1).
	DrawSegment(x0, y0, x1, y1 float64, style Style) error

	// DrawShape strokes the outline built by trace.
	DrawShape(trace Tracer, style Style) error

	// Capture exports the current content as an immutable snapshot.
	Capture() (paint.Snapshot, error)

	// Render replaces the current content with the snapshot's image.
	// On error the surface is left unchanged.
	Render(s paint.Snapshot) error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Tracer appends a shape outline to the current path of dc.
// It must not stroke, fill or change the paint state.
type Tracer func(dc *gg.Context)

// Errors.
var (
	// ErrClosed is returned by operations on a closed surface.
	ErrClosed = errors.New("surface: closed")

	// ErrInvalidStyle is returned for non-positive stroke widths.
	ErrInvalidStyle = errors.New("surface: invalid stroke style")
)
