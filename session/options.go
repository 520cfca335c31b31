// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package session

import (
	"context"

	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/history"
)

// Storage saves and loads named snapshots. *storage.Dir implements it.
type Storage interface {
	Save(ctx context.Context, name string, snap paint.Snapshot) error
	Load(ctx context.Context, name string) (paint.Snapshot, error)
}

// Option configures a Session.
type Option func(*options)

type options struct {
	limit    int
	storage  Storage
	notifier Notifier
}

func defaultOptions() options {
	return options{
		limit:    history.DefaultLimit,
		notifier: logNotifier{},
	}
}

// WithHistoryLimit bounds the undo and redo stacks. Values below 2 make
// them unbounded.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithStorage enables Save and Load.
func WithStorage(s Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithNotifier routes notices to n instead of the package logger.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}
