// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package session

import "errors"

var (
	// ErrBusy is returned for actions that would touch the canvas while a
	// compositor call is in flight.
	ErrBusy = errors.New("session: compositor call in progress")

	// ErrNoStorage is returned by Save and Load on a session built without
	// WithStorage.
	ErrNoStorage = errors.New("session: no storage configured")

	// ErrNilCollaborator is returned by New when a required collaborator is
	// missing.
	ErrNilCollaborator = errors.New("session: nil collaborator")
)

// CompositorError reports a shape edit that was abandoned. The canvas and
// history are unchanged.
type CompositorError struct {
	// Shape is the tool that was active during the drag.
	Shape string

	// Err is the compositor or render failure.
	Err error
}

func (e *CompositorError) Error() string {
	return "session: " + e.Shape + " edit failed: " + e.Err.Error()
}

func (e *CompositorError) Unwrap() error {
	return e.Err
}
