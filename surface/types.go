// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Style defines how to stroke a segment or shape outline.
type Style struct {
	// Color is the stroke color.
	Color gg.RGBA

	// Width is the stroke width in pixels. Must be positive.
	Width float64

	// Cap is the shape of open line endpoints.
	Cap gg.LineCap

	// Join is the shape of corners between connected segments.
	Join gg.LineJoin
}

// BrushStyle returns the style used for freehand strokes: round caps and
// joins so consecutive segments blend into a continuous line.
func BrushStyle(c gg.RGBA, width float64) Style {
	return Style{
		Color: c,
		Width: width,
		Cap:   gg.LineCapRound,
		Join:  gg.LineJoinRound,
	}
}

// ShapeStyle returns the style used for composited shapes: butt caps and
// mitered corners for crisp outlines.
func ShapeStyle(c gg.RGBA, width float64) Style {
	return Style{
		Color: c,
		Width: width,
		Cap:   gg.LineCapButt,
		Join:  gg.LineJoinMiter,
	}
}

// Validate reports whether the style can be stroked.
func (s Style) Validate() error {
	if !(s.Width > 0) || math.IsInf(s.Width, 0) {
		return fmt.Errorf("%w: width %v", ErrInvalidStyle, s.Width)
	}
	return nil
}
