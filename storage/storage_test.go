// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gogpu/gg"

	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/surface"
)

func testSnapshot(t *testing.T) paint.Snapshot {
	t.Helper()
	c := surface.NewCanvas(16, 12)
	defer c.Close()
	if err := c.DrawSegment(2, 2, 12, 9, surface.BrushStyle(gg.RGBA{B: 1, A: 1}, 2)); err != nil {
		t.Fatalf("DrawSegment() error = %v", err)
	}
	s, err := c.Capture()
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	return s
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{"sketch", "sketch.png", nil},
		{"  sketch  ", "sketch.png", nil},
		{"sketch.png", "sketch.png", nil},
		{"Sketch.PNG", "Sketch.PNG", nil},
		{"photo.jpg", "photo.jpg.png", nil},
		{"sub/sketch", filepath.Join("sub", "sketch.png"), nil},
		{"", "", ErrEmptyName},
		{"   ", "", ErrEmptyName},
		{"../escape", "", ErrInvalidName},
		{"a/../../b", "", ErrInvalidName},
		{"/etc/passwd", "", ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("Normalize(%q) error = %v, want %v", tt.in, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	d := New(filepath.Join(t.TempDir(), "saved"))
	snap := testSnapshot(t)

	if err := d.Save(ctx, "drawing", snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(d.Base(), "drawing.png")); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	got, err := d.Load(ctx, "drawing.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.Equal(snap) {
		t.Errorf("Load() = %v, want %v", got, snap)
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	d := New(t.TempDir())
	first := testSnapshot(t)

	blank := surface.NewCanvas(4, 4)
	second, err := blank.Capture()
	blank.Close()
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}

	if err := d.Save(ctx, "x", first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := d.Save(ctx, "x", second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := d.Load(ctx, "x")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.Equal(second) {
		t.Errorf("Load() = %v, want %v", got, second)
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	d := New(dir)

	if err := os.WriteFile(filepath.Join(dir, "junk.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want error
	}{
		{"missing", ErrNotFound},
		{"", ErrEmptyName},
		{"../up", ErrInvalidName},
		{"junk", paint.ErrMalformedSnapshot},
	}
	for _, tt := range tests {
		_, err := d.Load(ctx, tt.name)
		var se *Error
		if !errors.As(err, &se) {
			t.Errorf("Load(%q) error = %v, want *Error", tt.name, err)
			continue
		}
		if se.Op != "load" {
			t.Errorf("Load(%q) Op = %q, want load", tt.name, se.Op)
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("Load(%q) error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestSaveErrors(t *testing.T) {
	ctx := context.Background()
	d := New(t.TempDir())

	if err := d.Save(ctx, "empty", paint.Snapshot{}); !errors.Is(err, paint.ErrEmptySnapshot) {
		t.Errorf("Save(empty snapshot) error = %v, want ErrEmptySnapshot", err)
	}
	if err := d.Save(ctx, " ", testSnapshot(t)); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Save(blank name) error = %v, want ErrEmptyName", err)
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if err := d.Save(cctx, "late", testSnapshot(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Save(canceled) error = %v, want context.Canceled", err)
	}
}

func TestListAndRemove(t *testing.T) {
	ctx := context.Background()
	d := New(filepath.Join(t.TempDir(), "not-yet"))

	names, err := d.List(ctx)
	if err != nil || len(names) != 0 {
		t.Fatalf("List() on missing dir = %v, %v; want empty", names, err)
	}

	snap := testSnapshot(t)
	for _, n := range []string{"b", "a", "c.PNG"} {
		if err := d.Save(ctx, n, snap); err != nil {
			t.Fatalf("Save(%q) error = %v", n, err)
		}
	}
	if err := os.WriteFile(filepath.Join(d.Base(), "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err = d.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if want := []string{"a.png", "b.png", "c.PNG"}; !slices.Equal(names, want) {
		t.Errorf("List() = %v, want %v", names, want)
	}

	if err := d.Remove(ctx, "b"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := d.Remove(ctx, "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove() error = %v, want ErrNotFound", err)
	}
}

func TestDefaultDir(t *testing.T) {
	if got := New("").Base(); got != DefaultDir {
		t.Errorf("New(\"\").Base() = %q, want %q", got, DefaultDir)
	}
	p, err := New("imgs").Path("one")
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if want := filepath.Join("imgs", "one.png"); p != want {
		t.Errorf("Path() = %q, want %q", p, want)
	}
}
