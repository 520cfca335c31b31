// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import "errors"

// Errors wrapped by RenderError.
var (
	// ErrMalformedBase is returned when the base snapshot cannot be decoded.
	ErrMalformedBase = errors.New("malformed base image")

	// ErrInvalidGeometry is returned for non-finite coordinates or an
	// out-of-range line width.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnknownShape is returned for shape tags missing from the registry.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrInvalidColor is returned when the color is not a hex color.
	ErrInvalidColor = errors.New("invalid color")
)

// RenderError reports a failed Composite call.
type RenderError struct {
	// Shape is the requested shape tag.
	Shape string

	// Err is the underlying cause.
	Err error
}

func (e *RenderError) Error() string {
	return "compositor: render " + e.Shape + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Kind returns a stable name for the wrapped sentinel, used on the wire:
// "malformed_base", "invalid_geometry", "unknown_shape", "invalid_color",
// or "internal" for anything else.
func (e *RenderError) Kind() string {
	switch {
	case errors.Is(e.Err, ErrMalformedBase):
		return "malformed_base"
	case errors.Is(e.Err, ErrInvalidGeometry):
		return "invalid_geometry"
	case errors.Is(e.Err, ErrUnknownShape):
		return "unknown_shape"
	case errors.Is(e.Err, ErrInvalidColor):
		return "invalid_color"
	default:
		return "internal"
	}
}

// KindError returns the sentinel for a wire kind name, or nil if the name is
// not one returned by RenderError.Kind.
func KindError(kind string) error {
	switch kind {
	case "malformed_base":
		return ErrMalformedBase
	case "invalid_geometry":
		return ErrInvalidGeometry
	case "unknown_shape":
		return ErrUnknownShape
	case "invalid_color":
		return ErrInvalidColor
	default:
		return nil
	}
}
