// Package paint is the edit-history and shape-compositing core of a raster
// image editor built on gg.
//
// # Overview
//
// A user paints freehand strokes or composites shapes (lines, rectangles,
// ellipses) onto a persistent bitmap. After every mutating action the whole
// canvas is captured as an immutable [Snapshot] and committed to a linear
// undo/redo history.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggpaint/compositor"
//	    "github.com/gogpu/ggpaint/session"
//	    "github.com/gogpu/ggpaint/surface"
//	)
//
//	canvas := surface.NewCanvas(800, 600)
//	defer canvas.Close()
//
//	s, err := session.New(canvas, compositor.NewRaster(), widgets)
//	if err != nil {
//	    return err
//	}
//
//	// Freehand stroke
//	_ = s.PointerDown(10, 10)
//	s.PointerMove(40, 25)
//	_ = s.PointerUp(ctx, 40, 25)
//
//	// Step back and forward through history
//	_, _ = s.Undo()
//	_, _ = s.Redo()
//
// # Architecture
//
// The module is organized into:
//   - paint: Snapshot, colour parsing, logging
//   - history: undo/redo stacks with a never-discarded floor entry
//   - surface: drawing-surface primitives on gg.Context
//   - compositor: shape rendering on a base snapshot, local or over HTTP
//   - storage: named PNG files under a fixed base directory
//   - session: the pointer/tool state machine that ties them together
//
// # Coordinate System
//
// Same as gg: origin at top-left, X grows right, Y grows down, one unit per
// pixel.
package paint
