// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package remote carries compositor calls over HTTP.
//
// The server side wraps any compositor.Compositor in a chi router:
//
//	http.ListenAndServe(":8088", remote.NewHandler(compositor.NewRaster()))
//
// The client side implements compositor.Compositor, so an editing session
// can use a compositor service as a drop-in replacement for the in-process
// Raster:
//
//	c, err := remote.NewClient("http://localhost:8088", remote.WithTimeout(5*time.Second))
//	s, err := session.New(canvas, c, widgets)
//
// # Wire format
//
//	POST /v1/composite
//	{"shape":"rect","start_x":10,"start_y":10,"end_x":50,"end_y":40,
//	 "color":"#ff0000","line_width":3,"base":"data:image/png;base64,..."}
//
//	200 {"image":"data:image/png;base64,..."}
//	422 {"error":"...","kind":"invalid_geometry"}
//	400 {"error":"...","kind":"bad_request"}
//
//	GET /v1/shapes  -> 200 {"shapes":["ellipse","line","rect"]}
//	GET /healthz    -> 200 ok
//
// Render failures come back from the client as *compositor.RenderError
// wrapping the same sentinel the server saw; network and protocol failures
// are *TransportError.
package remote
