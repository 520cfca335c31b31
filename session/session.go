// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/compositor"
	"github.com/gogpu/ggpaint/history"
	"github.com/gogpu/ggpaint/surface"
)

// Session is the editing state of one canvas. Its methods may be called from
// any goroutine; a compositor call in flight makes conflicting actions fail
// with ErrBusy instead of waiting.
type Session struct {
	mu sync.Mutex

	surface  surface.Surface
	comp     compositor.Compositor
	widgets  Widgets
	storage  Storage
	notifier Notifier

	history *history.Store[paint.Snapshot]
	state   State
	drag    drag
}

// New creates a session over surf and pushes its current content as the
// history floor.
func New(surf surface.Surface, comp compositor.Compositor, widgets Widgets, opts ...Option) (*Session, error) {
	if surf == nil || comp == nil || widgets == nil {
		return nil, ErrNilCollaborator
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	floor, err := surf.Capture()
	if err != nil {
		return nil, fmt.Errorf("session: capture blank canvas: %w", err)
	}

	s := &Session{
		surface:  surf,
		comp:     comp,
		widgets:  widgets,
		storage:  o.storage,
		notifier: o.notifier,
		history:  history.New[paint.Snapshot](history.WithLimit(o.limit)),
	}
	s.history.Push(floor)
	return s, nil
}

// State returns the current drag state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Tool returns the tool captured by the current drag, or "" when Idle.
func (s *Session) Tool() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Idle {
		return ""
	}
	return s.drag.tool
}

// History returns a copy of the undo and redo stacks.
func (s *Session) History() (undo, redo []paint.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.UndoStack(), s.history.RedoStack()
}

// Top returns the most recently committed snapshot.
func (s *Session) Top() paint.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	top, _ := s.history.Top()
	return top
}

// CanUndo reports whether Undo would change the canvas.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change the canvas.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// PointerDown starts a drag at (x, y) with the tool currently selected.
// A pointer-down during a drag restarts the drag at the new point.
func (s *Session) PointerDown(x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Compositing {
		return ErrBusy
	}
	tool := s.widgets.Tool()
	if tool == "" {
		tool = ToolBrush
	}
	s.drag = drag{tool: tool, startX: x, startY: y, lastX: x, lastY: y}
	s.state = Dragging

	paint.ComponentLogger("session").Debug("drag start", "tool", tool, "x", x, "y", y)
	return nil
}

// PointerMove paints a brush segment from the previous pointer position to
// (x, y). It does nothing unless a brush drag is in progress.
func (s *Session) PointerMove(x, y float64) error {
	s.mu.Lock()
	if s.state != Dragging || s.drag.tool != ToolBrush {
		s.mu.Unlock()
		return nil
	}

	x0, y0 := s.drag.lastX, s.drag.lastY
	s.drag.lastX, s.drag.lastY = x, y

	err := s.drawSegment(x0, y0, x, y)
	s.mu.Unlock()

	if err != nil {
		s.notify(slog.LevelWarn, "draw", "brush segment rejected", err)
	}
	return err
}

// PointerUp ends the drag at (x, y) and commits one snapshot. It does
// nothing unless a drag is in progress.
//
// For shape tools the compositor is called without the session lock held;
// during the call State reports Compositing. If the compositor fails, the
// canvas and history are left as they were before the drag and a
// *CompositorError is returned.
func (s *Session) PointerUp(ctx context.Context, x, y float64) error {
	s.mu.Lock()
	if s.state != Dragging {
		s.mu.Unlock()
		return nil
	}
	d := s.drag

	if d.tool == ToolBrush {
		defer s.mu.Unlock()
		s.state = Idle
		return s.commit("brush")
	}

	base, err := s.surface.Capture()
	if err != nil {
		s.state = Idle
		s.mu.Unlock()
		return s.fail(d.tool, fmt.Errorf("capture base: %w", err))
	}
	req := compositor.Request{
		Shape:     d.tool,
		StartX:    d.startX,
		StartY:    d.startY,
		EndX:      x,
		EndY:      y,
		Color:     s.widgets.Color(),
		LineWidth: s.widgets.LineWidth(),
		Base:      base,
	}
	s.state = Compositing
	s.mu.Unlock()

	paint.ComponentLogger("session").Debug("compositing", "shape", req.Shape, "geometry", req.Geometry())
	out, err := s.comp.Composite(ctx, req)

	s.mu.Lock()
	s.state = Idle
	if err != nil {
		s.mu.Unlock()
		return s.fail(d.tool, err)
	}
	if err := s.surface.Render(out); err != nil {
		s.mu.Unlock()
		return s.fail(d.tool, fmt.Errorf("render result: %w", err))
	}
	if err := s.commit(d.tool); err != nil {
		// Canvas must match history.Top after an abandoned edit.
		_ = s.surface.Render(base)
		s.mu.Unlock()
		return s.fail(d.tool, err)
	}
	s.mu.Unlock()
	return nil
}

// Clear resets the canvas to its background and commits the result.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Compositing {
		return ErrBusy
	}
	s.surface.Clear()
	return s.commit("clear")
}

// Undo restores the previous snapshot. It reports false when only the
// blank floor remains.
func (s *Session) Undo() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Compositing {
		return false, ErrBusy
	}
	snap, ok := s.history.Undo()
	if !ok {
		return false, nil
	}
	if err := s.surface.Render(snap); err != nil {
		s.history.Redo()
		return false, fmt.Errorf("session: undo: %w", err)
	}
	paint.ComponentLogger("session").Debug("undo", "undo", s.history.UndoLen(), "redo", s.history.RedoLen())
	return true, nil
}

// Redo re-applies the most recently undone snapshot. It reports false when
// there is nothing to redo.
func (s *Session) Redo() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Compositing {
		return false, ErrBusy
	}
	snap, ok := s.history.Redo()
	if !ok {
		return false, nil
	}
	if err := s.surface.Render(snap); err != nil {
		s.history.Undo()
		return false, fmt.Errorf("session: redo: %w", err)
	}
	paint.ComponentLogger("session").Debug("redo", "undo", s.history.UndoLen(), "redo", s.history.RedoLen())
	return true, nil
}

// Save writes the current canvas under name.
func (s *Session) Save(ctx context.Context, name string) error {
	if s.storage == nil {
		return ErrNoStorage
	}

	s.mu.Lock()
	snap, err := s.surface.Capture()
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("session: save: %w", err)
	}

	if err := s.storage.Save(ctx, name, snap); err != nil {
		s.notify(slog.LevelWarn, "save", "could not save "+name, err)
		return err
	}
	return nil
}

// Load replaces the canvas with the image saved under name and commits it.
// Images of another size are drawn at the origin and clipped.
func (s *Session) Load(ctx context.Context, name string) error {
	if s.storage == nil {
		return ErrNoStorage
	}
	if s.State() == Compositing {
		return ErrBusy
	}

	snap, err := s.storage.Load(ctx, name)
	if err != nil {
		s.notify(slog.LevelWarn, "load", "could not load "+name, err)
		return err
	}

	s.mu.Lock()
	if s.state == Compositing {
		s.mu.Unlock()
		return ErrBusy
	}
	if err := s.surface.Render(snap); err != nil {
		s.mu.Unlock()
		err = fmt.Errorf("session: load %s: %w", name, err)
		s.notify(slog.LevelWarn, "load", "could not display "+name, err)
		return err
	}
	err = s.commit("load")
	s.mu.Unlock()
	return err
}

// drawSegment strokes one brush segment with the widget values sampled now.
// s.mu must be held.
func (s *Session) drawSegment(x0, y0, x1, y1 float64) error {
	c, err := paint.ParseColor(s.widgets.Color())
	if err != nil {
		return err
	}
	return s.surface.DrawSegment(x0, y0, x1, y1, surface.BrushStyle(c, float64(s.widgets.LineWidth())))
}

// commit captures the canvas and pushes it. s.mu must be held.
func (s *Session) commit(op string) error {
	snap, err := s.surface.Capture()
	if err != nil {
		return fmt.Errorf("session: %s: capture: %w", op, err)
	}
	s.history.Push(snap)
	paint.ComponentLogger("session").Debug("commit", "op", op, "undo", s.history.UndoLen(), "snapshot", snap)
	return nil
}

// fail reports an abandoned shape edit. s.mu must not be held.
func (s *Session) fail(shape string, err error) error {
	cerr := &CompositorError{Shape: shape, Err: err}
	s.notify(slog.LevelWarn, "composite", "could not draw "+shape, cerr)
	return cerr
}

func (s *Session) notify(level slog.Level, op, msg string, err error) {
	s.notifier.Notify(Notice{Level: level, Op: op, Message: msg, Err: err})
}
