// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"context"

	paint "github.com/gogpu/ggpaint"
)

// MaxLineWidth is the widest stroke a compositor accepts.
const MaxLineWidth = 512

// Request is one shape edit. It is a transient value with no identity beyond
// the call.
type Request struct {
	// Shape is the registered shape tag, e.g. "line" or "rect".
	Shape string

	// StartX, StartY is where the drag began.
	StartX, StartY float64

	// EndX, EndY is where the drag ended.
	EndX, EndY float64

	// Color is a hex color such as "#ff0000".
	Color string

	// LineWidth is the stroke width in pixels.
	LineWidth int

	// Base is the canvas before the edit.
	Base paint.Snapshot
}

// Geometry returns the drag endpoints.
func (r Request) Geometry() Geometry {
	return Geometry{X0: r.StartX, Y0: r.StartY, X1: r.EndX, Y1: r.EndY}
}

// Compositor renders a shape onto a base snapshot.
//
// Implementations must be pure: the same request always yields the same
// snapshot. Composite blocks until the result is ready or ctx is done.
type Compositor interface {
	Composite(ctx context.Context, req Request) (paint.Snapshot, error)
}

// Func adapts an ordinary function to the Compositor interface.
type Func func(ctx context.Context, req Request) (paint.Snapshot, error)

// Composite calls f(ctx, req).
func (f Func) Composite(ctx context.Context, req Request) (paint.Snapshot, error) {
	return f(ctx, req)
}
