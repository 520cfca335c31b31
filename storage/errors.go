// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package storage

import "errors"

// Sentinel errors wrapped by Error.
var (
	ErrEmptyName   = errors.New("empty file name")
	ErrInvalidName = errors.New("invalid file name")
	ErrNotFound    = errors.New("image not found")
)

// Error reports a failed storage operation.
type Error struct {
	Op   string // "save", "load", "list", "remove" or "path"
	Name string // name as given by the caller
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return "storage: " + e.Op + ": " + e.Err.Error()
	}
	return "storage: " + e.Op + " " + e.Name + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
