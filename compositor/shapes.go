// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"math"
	"sort"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggpaint/surface"
)

// Geometry is the drag box of a shape edit: where the pointer went down
// (X0, Y0) and where it was released (X1, Y1).
type Geometry struct {
	X0, Y0, X1, Y1 float64
}

// Normalized returns g with X0 <= X1 and Y0 <= Y1, so shapes dragged up or
// to the left cover the same box as shapes dragged down and to the right.
func (g Geometry) Normalized() Geometry {
	return Geometry{
		X0: math.Min(g.X0, g.X1),
		Y0: math.Min(g.Y0, g.Y1),
		X1: math.Max(g.X0, g.X1),
		Y1: math.Max(g.Y0, g.Y1),
	}
}

// Finite reports whether every coordinate is a finite number.
func (g Geometry) Finite() bool {
	for _, v := range [...]float64{g.X0, g.Y0, g.X1, g.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// TracerFactory builds the tracer for one shape edit.
type TracerFactory func(g Geometry) surface.Tracer

// Shape tags registered by default.
const (
	ShapeLine    = "line"
	ShapeRect    = "rect"
	ShapeEllipse = "ellipse"
)

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry maps shape tags to tracer factories.
//
// Example registration:
//
//	func init() {
//	    compositor.Register("triangle", triangleTracer)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]TracerFactory
}

// NewRegistry creates a registry holding only the built-in shapes.
func NewRegistry() *Registry {
	r := &Registry{}
	registerBuiltins(r)
	return r
}

// Register adds a shape to the global registry.
// Registering a tag that already exists replaces the previous entry.
func Register(tag string, factory TracerFactory) {
	globalRegistry.Register(tag, factory)
}

// Unregister removes a shape from the global registry.
func Unregister(tag string) {
	globalRegistry.Unregister(tag)
}

// Lookup returns the factory for tag from the global registry.
func Lookup(tag string) (TracerFactory, bool) {
	return globalRegistry.Lookup(tag)
}

// Shapes returns all tags in the global registry, sorted.
func Shapes() []string {
	return globalRegistry.Shapes()
}

// Register adds a shape to this registry.
func (r *Registry) Register(tag string, factory TracerFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]TracerFactory)
	}
	r.entries[tag] = factory
}

// Unregister removes a shape from this registry.
func (r *Registry) Unregister(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, tag)
}

// Lookup returns the factory registered for tag.
func (r *Registry) Lookup(tag string) (TracerFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.entries[tag]
	return f, ok
}

// Shapes returns all registered tags, sorted.
func (r *Registry) Shapes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func registerBuiltins(r *Registry) {
	r.Register(ShapeLine, lineTracer)
	r.Register(ShapeRect, rectTracer)
	r.Register(ShapeEllipse, ellipseTracer)
}

func lineTracer(g Geometry) surface.Tracer {
	return func(dc *gg.Context) {
		dc.DrawLine(g.X0, g.Y0, g.X1, g.Y1)
	}
}

func rectTracer(g Geometry) surface.Tracer {
	n := g.Normalized()
	return func(dc *gg.Context) {
		dc.DrawRectangle(n.X0, n.Y0, n.X1-n.X0, n.Y1-n.Y0)
	}
}

// ellipseTracer inscribes the ellipse in the drag box.
func ellipseTracer(g Geometry) surface.Tracer {
	n := g.Normalized()
	rx := (n.X1 - n.X0) / 2
	ry := (n.Y1 - n.Y0) / 2
	return func(dc *gg.Context) {
		dc.DrawEllipse(n.X0+rx, n.Y0+ry, rx, ry)
	}
}

// init registers the built-in shapes.
func init() {
	registerBuiltins(globalRegistry)
}
