// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	paint "github.com/gogpu/ggpaint"
)

// DefaultDir is the base directory used when none is given.
const DefaultDir = "saved_images"

// Ext is the file extension every saved image carries.
const Ext = ".png"

// Option configures a Dir.
type Option func(*Dir)

// WithPerm sets the permission bits for new files. Directories get the same
// bits plus owner search.
func WithPerm(perm fs.FileMode) Option {
	return func(d *Dir) {
		d.perm = perm.Perm()
	}
}

// Dir stores snapshots as files under a base directory.
type Dir struct {
	base string
	perm fs.FileMode
}

// New creates a Dir rooted at base. An empty base means DefaultDir. The
// directory is created on the first Save.
func New(base string, opts ...Option) *Dir {
	if base == "" {
		base = DefaultDir
	}
	d := &Dir{base: filepath.Clean(base), perm: 0o644}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Base returns the base directory.
func (d *Dir) Base() string {
	return d.base
}

// Path returns the file path name resolves to.
func (d *Dir) Path(name string) (string, error) {
	file, err := Normalize(name)
	if err != nil {
		return "", &Error{Op: "path", Name: name, Err: err}
	}
	return filepath.Join(d.base, file), nil
}

// Save writes snap under name, replacing any previous file. The write goes
// through a temporary file so a failed save never leaves a truncated image.
func (d *Dir) Save(ctx context.Context, name string, snap paint.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return &Error{Op: "save", Name: name, Err: err}
	}
	if snap.IsZero() {
		return &Error{Op: "save", Name: name, Err: paint.ErrEmptySnapshot}
	}
	file, err := Normalize(name)
	if err != nil {
		return &Error{Op: "save", Name: name, Err: err}
	}
	path := filepath.Join(d.base, file)

	if err := os.MkdirAll(filepath.Dir(path), d.perm|0o700); err != nil {
		return &Error{Op: "save", Name: name, Err: err}
	}
	if err := writeAtomic(path, snap, d.perm); err != nil {
		return &Error{Op: "save", Name: name, Err: err}
	}

	paint.ComponentLogger("storage").Debug("saved", "path", path, "snapshot", snap)
	return nil
}

// Load reads the image saved under name.
func (d *Dir) Load(ctx context.Context, name string) (paint.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return paint.Snapshot{}, &Error{Op: "load", Name: name, Err: err}
	}
	file, err := Normalize(name)
	if err != nil {
		return paint.Snapshot{}, &Error{Op: "load", Name: name, Err: err}
	}
	path := filepath.Join(d.base, file)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return paint.Snapshot{}, &Error{Op: "load", Name: name, Err: fmt.Errorf("%w: %s", ErrNotFound, path)}
	}
	if err != nil {
		return paint.Snapshot{}, &Error{Op: "load", Name: name, Err: err}
	}

	snap, err := paint.NewSnapshot(data)
	if err != nil {
		return paint.Snapshot{}, &Error{Op: "load", Name: name, Err: err}
	}

	paint.ComponentLogger("storage").Debug("loaded", "path", path, "snapshot", snap)
	return snap, nil
}

// List returns the names of saved images, sorted. A missing base directory
// yields an empty list.
func (d *Dir) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: "list", Err: err}
	}
	entries, err := os.ReadDir(d.base)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Op: "list", Err: err}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !hasExt(e.Name()) || strings.HasPrefix(e.Name(), tempPrefix) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// Remove deletes the image saved under name.
func (d *Dir) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return &Error{Op: "remove", Name: name, Err: err}
	}
	file, err := Normalize(name)
	if err != nil {
		return &Error{Op: "remove", Name: name, Err: err}
	}
	err = os.Remove(filepath.Join(d.base, file))
	if errors.Is(err, fs.ErrNotExist) {
		return &Error{Op: "remove", Name: name, Err: ErrNotFound}
	}
	if err != nil {
		return &Error{Op: "remove", Name: name, Err: err}
	}
	return nil
}

// Normalize turns a user supplied name into a file name relative to the
// base directory.
func Normalize(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if !hasExt(name) {
		name += Ext
	}
	if filepath.IsAbs(name) || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Clean(name), nil
}

const tempPrefix = ".tmp-"

func hasExt(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Ext)
}

func writeAtomic(path string, snap paint.Snapshot, perm fs.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), tempPrefix+"*"+Ext)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = snap.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Chmod(perm); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
