// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package session turns pointer events into committed canvas snapshots.
//
// A Session owns the drag state machine of one canvas:
//
//	Idle --PointerDown--> Dragging --PointerUp--> Idle
//	                          |
//	                          +--(shape tool)--> Compositing --> Idle
//
// Every finished drag, Clear and Load pushes exactly one snapshot onto the
// undo history, so the canvas always matches the history top once the
// pointer is released. Brush strokes are painted locally segment by segment;
// every other tool is handed to a compositor.Compositor together with the
// pre-edit snapshot, and its result replaces the canvas.
//
// A failed compositor call aborts only that edit: the canvas and history
// stay as they were, the Notifier receives a notice, and PointerUp returns
// a *CompositorError.
//
// Example:
//
//	canvas := surface.NewCanvas(800, 600)
//	palette := session.NewPalette()
//	s, err := session.New(canvas, compositor.NewRaster(), palette,
//		session.WithStorage(storage.New("")))
//
//	palette.SetTool("rect")
//	s.PointerDown(10, 10)
//	err = s.PointerUp(ctx, 50, 40)
//	s.Undo()
package session
