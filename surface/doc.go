// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing-surface primitives of the editor.
//
// Surface is the boundary between the editing session and pixel
// rasterization. The session never touches pixels itself: it asks the
// surface to draw a segment or a shape, to clear, to capture its content as
// a paint.Snapshot, and to render a snapshot back.
//
// # Canvas
//
// Canvas is the gg-backed implementation. It owns a gg.Pixmap and draws
// into it through a gg.Context using the software rasterizer:
//
//	c := surface.NewCanvas(800, 600)
//	defer c.Close()
//
//	style := surface.BrushStyle(gg.Hex("#ff0000"), 4)
//	_ = c.DrawSegment(10, 10, 120, 80, style)
//
//	snap, _ := c.Capture()
//	c.Clear()
//	_ = c.Render(snap) // back to the red segment
//
// The canvas background is opaque, so every pixel stays opaque and a
// Capture/Render round trip reproduces the canvas exactly.
//
// # Tracers
//
// Shapes are described by a Tracer, a function that appends the outline to
// the context's current path. DrawShape strokes whatever the tracer built.
// The compositor package maps shape tags to tracers.
//
// # Backends
//
// Surface implementations register under a name with a priority. Open
// creates a surface by name, or with the preferred available backend when
// the name is empty. The built-in backend is "canvas".
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
package surface
