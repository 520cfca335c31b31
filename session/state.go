// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package session

import "strconv"

// ToolBrush is the freehand tool. Every other tool name is a shape tag
// resolved by the compositor.
const ToolBrush = "brush"

// State is the drag state of a Session.
type State int

const (
	// Idle means no pointer is held.
	Idle State = iota

	// Dragging means a pointer went down and has not been released.
	Dragging

	// Compositing means a shape edit is waiting for the compositor.
	Compositing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Compositing:
		return "Compositing"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// drag is the state captured at pointer-down.
type drag struct {
	tool           string
	startX, startY float64
	lastX, lastY   float64
}
