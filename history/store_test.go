// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"fmt"
	"slices"
	"testing"
)

func stacks(h *Store[string]) (undo, redo []string) {
	return slices.Clone(h.undo), slices.Clone(h.redo)
}

func TestPushClearsRedo(t *testing.T) {
	h := New[string]()
	h.Push("S0")
	for i := 1; i <= 5; i++ {
		h.Push(fmt.Sprintf("S%d", i))
		if h.RedoLen() != 0 {
			t.Fatalf("after Push #%d RedoLen() = %d, want 0", i, h.RedoLen())
		}
		if i%2 == 0 {
			h.Undo()
			if h.RedoLen() == 0 {
				t.Fatalf("Undo() after Push #%d did not populate redo", i)
			}
		}
	}
}

func TestUndoRedoInverse(t *testing.T) {
	h := New[string]()
	for _, s := range []string{"S0", "S1", "S2"} {
		h.Push(s)
	}

	before, _ := h.Top()
	if _, ok := h.Undo(); !ok {
		t.Fatal("Undo() = false with 3 entries")
	}
	got, ok := h.Redo()
	if !ok {
		t.Fatal("Redo() = false after Undo()")
	}
	if got != before {
		t.Errorf("Redo() = %q, want %q", got, before)
	}
	if top, _ := h.Top(); top != before {
		t.Errorf("Top() = %q, want %q", top, before)
	}
}

func TestFloorPreserved(t *testing.T) {
	h := New[string]()
	h.Push("blank")
	h.Push("S1")
	h.Push("S2")

	for i := 0; i < 2; i++ {
		if _, ok := h.Undo(); !ok {
			t.Fatalf("Undo() #%d = false, want true", i+1)
		}
	}

	undo, redo := stacks(h)
	for i := 0; i < 3; i++ {
		if s, ok := h.Undo(); ok {
			t.Fatalf("Undo() at floor = (%q, true), want false", s)
		}
	}
	gotUndo, gotRedo := stacks(h)
	if !slices.Equal(undo, gotUndo) || !slices.Equal(redo, gotRedo) {
		t.Errorf("Undo() at floor mutated state: undo %v -> %v, redo %v -> %v", undo, gotUndo, redo, gotRedo)
	}
	if floor, _ := h.Floor(); floor != "blank" {
		t.Errorf("Floor() = %q, want blank", floor)
	}
}

func TestRedoEmptyIsNoop(t *testing.T) {
	h := New[string]()
	h.Push("S0")
	h.Push("S1")

	undo, redo := stacks(h)
	if s, ok := h.Redo(); ok {
		t.Fatalf("Redo() = (%q, true), want false", s)
	}
	gotUndo, gotRedo := stacks(h)
	if !slices.Equal(undo, gotUndo) || !slices.Equal(redo, gotRedo) {
		t.Error("Redo() on empty redo stack mutated state")
	}
}

func TestEmptyStore(t *testing.T) {
	h := New[string]()
	if _, ok := h.Undo(); ok {
		t.Error("Undo() on empty store = true")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo() on empty store = true")
	}
	if _, ok := h.Top(); ok {
		t.Error("Top() on empty store = true")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty store reports CanUndo/CanRedo")
	}
}

// Brush stroke, undo, redo starting from a blank canvas.
func TestBrushUndoRedoSequence(t *testing.T) {
	h := New[string]()
	h.Push("S0")
	h.Push("S1")

	got, ok := h.Undo()
	if !ok || got != "S0" {
		t.Fatalf("Undo() = (%q, %v), want (S0, true)", got, ok)
	}
	undo, redo := stacks(h)
	if !slices.Equal(undo, []string{"S0"}) || !slices.Equal(redo, []string{"S1"}) {
		t.Fatalf("after Undo: undo=%v redo=%v", undo, redo)
	}

	got, ok = h.Redo()
	if !ok || got != "S1" {
		t.Fatalf("Redo() = (%q, %v), want (S1, true)", got, ok)
	}
	undo, redo = stacks(h)
	if !slices.Equal(undo, []string{"S0", "S1"}) || len(redo) != 0 {
		t.Fatalf("after Redo: undo=%v redo=%v", undo, redo)
	}
}

func TestNewEditDiscardsBranch(t *testing.T) {
	h := New[string]()
	for _, s := range []string{"S0", "S1", "S2"} {
		h.Push(s)
	}
	h.Push("S3")

	undo, redo := stacks(h)
	if !slices.Equal(undo, []string{"S0", "S1", "S2", "S3"}) || len(redo) != 0 {
		t.Fatalf("undo=%v redo=%v", undo, redo)
	}

	// A populated redo branch is discarded by the next push.
	h.Undo()
	h.Undo()
	h.Push("S4")
	undo, redo = stacks(h)
	if !slices.Equal(undo, []string{"S0", "S1", "S4"}) || len(redo) != 0 {
		t.Fatalf("after branch: undo=%v redo=%v", undo, redo)
	}
}

func TestLimitKeepsFloor(t *testing.T) {
	h := New[string](WithLimit(3))
	for _, s := range []string{"blank", "S1", "S2", "S3", "S4"} {
		h.Push(s)
	}

	undo, _ := stacks(h)
	if want := []string{"blank", "S3", "S4"}; !slices.Equal(undo, want) {
		t.Fatalf("undo = %v, want %v", undo, want)
	}

	h.Undo()
	got, ok := h.Undo()
	if !ok || got != "blank" {
		t.Errorf("Undo() down to floor = (%q, %v), want (blank, true)", got, ok)
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo() past floor = true")
	}
}

func TestWithLimitBelowTwoIsUnbounded(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		h := New[int](WithLimit(n))
		if h.Limit() != 0 {
			t.Errorf("WithLimit(%d): Limit() = %d, want 0", n, h.Limit())
		}
		for i := 0; i < 100; i++ {
			h.Push(i)
		}
		if h.UndoLen() != 100 {
			t.Errorf("WithLimit(%d): UndoLen() = %d, want 100", n, h.UndoLen())
		}
	}
}

func TestReset(t *testing.T) {
	h := New[string]()
	h.Push("S0")
	h.Push("S1")
	h.Undo()

	h.Reset("loaded")
	undo, redo := stacks(h)
	if !slices.Equal(undo, []string{"loaded"}) || len(redo) != 0 {
		t.Errorf("after Reset: undo=%v redo=%v", undo, redo)
	}
	if floor, _ := h.Floor(); floor != "loaded" {
		t.Errorf("Floor() = %q, want loaded", floor)
	}
}

func BenchmarkPushUndoRedo(b *testing.B) {
	h := New[int](WithLimit(DefaultLimit))
	h.Push(0)
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		h.Push(i)
		h.Undo()
		h.Redo()
	}
}

func TestStacksAreCopies(t *testing.T) {
	h := New[string]()
	h.Push("s0")
	h.Push("s1")
	h.Undo()

	u := h.UndoStack()
	r := h.RedoStack()
	if !slices.Equal(u, []string{"s0"}) || !slices.Equal(r, []string{"s1"}) {
		t.Fatalf("stacks = %v / %v, want [s0] / [s1]", u, r)
	}
	u[0] = "mutated"
	if top, _ := h.Top(); top != "s0" {
		t.Errorf("Top() = %q after mutating copy, want s0", top)
	}
}
