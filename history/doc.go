// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package history provides linear undo/redo over full-state snapshots.
//
// A Store keeps two stacks. Push appends to the undo stack and discards the
// redo branch. Undo moves the top entry to the redo stack and returns the new
// top, which is the state the caller must render. Redo is the exact inverse.
//
// The first entry ever pushed is the floor: Undo never removes it, so the
// caller can always return to the initial (typically blank) state. A depth
// limit, when set, evicts the oldest entries above the floor.
//
// "Nothing to undo" and "nothing to redo" are normal outcomes reported by a
// false second return value; no Store method fails.
//
// Store is not safe for concurrent use. It is owned by a single editing
// session, which serialises access.
package history
