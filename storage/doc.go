// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package storage saves and loads canvas snapshots as PNG files under one
// base directory.
//
// Names are user supplied. They are trimmed, get a ".png" suffix unless they
// already carry one in any case, and must stay inside the base directory:
//
//	d := storage.New("saved_images")
//	err := d.Save(ctx, "sketch", snap)   // writes saved_images/sketch.png
//	snap, err := d.Load(ctx, "sketch.PNG")
package storage
