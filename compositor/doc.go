// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compositor renders shapes onto a base snapshot.
//
// A Compositor takes the pre-edit canvas as a paint.Snapshot plus the shape
// parameters of one drag and returns a new snapshot with the shape added.
// It is a pure function of its inputs: the editing session treats it as a
// black box and may swap the local Raster for a remote service (see the
// remote sub-package) without any change in behavior.
//
// # Shapes
//
// Shapes are identified by a tag ("line", "rect", "ellipse") and registered
// in a Registry that maps the tag to a tracer factory. Adding a shape tool
// only requires registering a new tag:
//
//	compositor.Register("cross", func(g compositor.Geometry) surface.Tracer {
//	    return func(dc *gg.Context) {
//	        dc.DrawLine(g.X0, g.Y0, g.X1, g.Y1)
//	        dc.DrawLine(g.X0, g.Y1, g.X1, g.Y0)
//	    }
//	})
//
// # Caching
//
// Because results depend only on the request, NewCached can wrap any
// Compositor with an LRU cache keyed by a digest of the request and its
// base snapshot.
//
// # Errors
//
// Every failure is a *RenderError wrapping one of ErrMalformedBase,
// ErrInvalidGeometry, ErrUnknownShape or ErrInvalidColor, or the context
// error when the call was canceled.
package compositor
