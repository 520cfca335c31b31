// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package remote

import (
	"fmt"
	"strconv"

	"github.com/gogpu/ggpaint/compositor"
)

// TransportError reports a compositor call that failed before a render
// result or render error came back: connection failures, timeouts,
// unexpected status codes and undecodable replies.
type TransportError struct {
	// Op is "composite" or "shapes".
	Op string

	// URL is the endpoint that was called.
	URL string

	// StatusCode is the HTTP status, or 0 if no response arrived.
	StatusCode int

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	msg := "compositor: " + e.Op + " " + e.URL
	if e.StatusCode != 0 {
		msg += ": status " + strconv.Itoa(e.StatusCode)
	}
	return msg + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func wrapBase(err error) error {
	return fmt.Errorf("%w: %w", compositor.ErrMalformedBase, err)
}
