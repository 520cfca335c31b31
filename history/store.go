// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import "slices"

// DefaultLimit is the undo depth used by editing sessions unless configured
// otherwise.
const DefaultLimit = 50

// Option configures a Store.
type Option func(*options)

type options struct {
	limit int
}

// WithLimit bounds each stack to n entries. Values below 2 disable the
// limit, since a bounded stack must hold the floor plus one edit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// Store is an undo/redo history of snapshots of type S.
type Store[S any] struct {
	undo  []S
	redo  []S
	limit int
}

// New creates an empty Store. The first Push establishes the floor.
func New[S any](opts ...Option) *Store[S] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit < 2 {
		o.limit = 0
	}
	return &Store[S]{limit: o.limit}
}

// Push records s as the newest state and discards the redo branch.
func (h *Store[S]) Push(s S) {
	h.undo = append(h.undo, s)
	clear(h.redo)
	h.redo = h.redo[:0]

	if h.limit > 0 && len(h.undo) > h.limit {
		// Evict the oldest edit above the floor.
		var zero S
		copy(h.undo[1:], h.undo[2:])
		h.undo[len(h.undo)-1] = zero
		h.undo = h.undo[:len(h.undo)-1]
	}
}

// Undo steps back one state. It returns the state that is now current, or
// false when only the floor remains.
func (h *Store[S]) Undo() (S, bool) {
	var zero S
	if len(h.undo) <= 1 {
		return zero, false
	}

	top := h.undo[len(h.undo)-1]
	h.undo[len(h.undo)-1] = zero
	h.undo = h.undo[:len(h.undo)-1]

	h.redo = append(h.redo, top)
	if h.limit > 0 && len(h.redo) > h.limit {
		h.redo[0] = zero
		h.redo = h.redo[1:]
	}

	return h.undo[len(h.undo)-1], true
}

// Redo re-applies the most recently undone state and returns it, or false
// when there is nothing to redo.
func (h *Store[S]) Redo() (S, bool) {
	var zero S
	if len(h.redo) == 0 {
		return zero, false
	}

	s := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = zero
	h.redo = h.redo[:len(h.redo)-1]

	h.undo = append(h.undo, s)
	return s, true
}

// Reset drops all history and starts over from floor.
func (h *Store[S]) Reset(floor S) {
	clear(h.undo)
	clear(h.redo)
	h.undo = append(h.undo[:0], floor)
	h.redo = h.redo[:0]
}

// Top returns the current state, or false if nothing was pushed yet.
func (h *Store[S]) Top() (S, bool) {
	if len(h.undo) == 0 {
		var zero S
		return zero, false
	}
	return h.undo[len(h.undo)-1], true
}

// Floor returns the first state ever pushed (or set by Reset).
func (h *Store[S]) Floor() (S, bool) {
	if len(h.undo) == 0 {
		var zero S
		return zero, false
	}
	return h.undo[0], true
}

// CanUndo reports whether Undo would change state.
func (h *Store[S]) CanUndo() bool {
	return len(h.undo) > 1
}

// CanRedo reports whether Redo would change state.
func (h *Store[S]) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoLen returns the number of entries on the undo stack, floor included.
func (h *Store[S]) UndoLen() int {
	return len(h.undo)
}

// RedoLen returns the number of entries on the redo stack.
func (h *Store[S]) RedoLen() int {
	return len(h.redo)
}

// Limit returns the configured depth limit, or 0 if unbounded.
func (h *Store[S]) Limit() int {
	return h.limit
}

// UndoStack returns a copy of the undo stack, oldest first.
func (h *Store[S]) UndoStack() []S {
	return slices.Clone(h.undo)
}

// RedoStack returns a copy of the redo stack; the next state Redo would
// restore is last.
func (h *Store[S]) RedoStack() []S {
	return slices.Clone(h.redo)
}
