// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package remote

import (
	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/compositor"
)

// Endpoint paths.
const (
	CompositePath = "/v1/composite"
	ShapesPath    = "/v1/shapes"
	HealthPath    = "/healthz"
)

// kindBadRequest marks requests that could not be decoded at all.
const kindBadRequest = "bad_request"

type compositeRequest struct {
	Shape     string  `json:"shape"`
	StartX    float64 `json:"start_x"`
	StartY    float64 `json:"start_y"`
	EndX      float64 `json:"end_x"`
	EndY      float64 `json:"end_y"`
	Color     string  `json:"color"`
	LineWidth int     `json:"line_width"`
	Base      string  `json:"base"`
}

type compositeResponse struct {
	Image string `json:"image"`
}

type shapesResponse struct {
	Shapes []string `json:"shapes"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func encodeRequest(req compositor.Request) compositeRequest {
	return compositeRequest{
		Shape:     req.Shape,
		StartX:    req.StartX,
		StartY:    req.StartY,
		EndX:      req.EndX,
		EndY:      req.EndY,
		Color:     req.Color,
		LineWidth: req.LineWidth,
		Base:      req.Base.DataURL(),
	}
}

// decode converts the wire form back into a compositor.Request. A base that
// is not a PNG data URL is reported as a render error so the caller sees
// the same failure a local compositor would produce.
func (w compositeRequest) decode() (compositor.Request, error) {
	req := compositor.Request{
		Shape:     w.Shape,
		StartX:    w.StartX,
		StartY:    w.StartY,
		EndX:      w.EndX,
		EndY:      w.EndY,
		Color:     w.Color,
		LineWidth: w.LineWidth,
	}
	base, err := paint.ParseDataURL(w.Base)
	if err != nil {
		return req, &compositor.RenderError{Shape: w.Shape, Err: wrapBase(err)}
	}
	req.Base = base
	return req, nil
}
