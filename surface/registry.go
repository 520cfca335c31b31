// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a surface of the given size.
type Factory func(width, height int, opts ...CanvasOption) (Surface, error)

// Backend is a registered surface implementation.
type Backend struct {
	// Name is the unique identifier, e.g. "canvas".
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// New creates surfaces.
	New Factory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

var globalRegistry = &Registry{}

// Registry maps backend names to factories.
//
// Editors that render into a toolkit canvas register their own backend:
//
//	func init() {
//	    surface.Register("wasm", 50, newWASMSurface, wasmAvailable)
//	}
type Registry struct {
	mu       sync.RWMutex
	backends map[string]*Backend
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]*Backend)}
}

// Register adds a backend to the global registry.
// If available is nil, the backend is always available.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Backends returns the available backend names, preferred first.
func Backends() []string {
	return globalRegistry.Backends()
}

// Open creates a surface with the named backend from the global registry.
// An empty name selects the preferred available backend.
func Open(name string, width, height int, opts ...CanvasOption) (Surface, error) {
	return globalRegistry.Open(name, width, height, opts...)
}

// Register adds a backend, replacing any backend of the same name.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backends == nil {
		r.backends = make(map[string]*Backend)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.backends[name] = &Backend{Name: name, Priority: priority, New: factory, Available: available}
}

// Unregister removes a backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Backends returns the available backend names, preferred first. Equal
// priorities are ordered by name.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*Backend, 0, len(r.backends))
	for _, b := range r.backends {
		if b.Available() {
			list = append(list, b)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority > list[j].Priority
		}
		return list[i].Name < list[j].Name
	})

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}

// Open creates a surface with the named backend. An empty name tries the
// available backends in priority order and returns the first success.
func (r *Registry) Open(name string, width, height int, opts ...CanvasOption) (Surface, error) {
	if name != "" {
		r.mu.RLock()
		b, ok := r.backends[name]
		r.mu.RUnlock()
		if !ok {
			return nil, &BackendError{Name: name, Err: ErrUnknownBackend}
		}
		if !b.Available() {
			return nil, &BackendError{Name: name, Err: ErrBackendUnavailable}
		}
		return b.New(width, height, opts...)
	}

	names := r.Backends()
	if len(names) == 0 {
		return nil, ErrNoBackend
	}
	var lastErr error
	for _, n := range names {
		s, err := r.Open(n, width, height, opts...)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Registry errors.
var (
	ErrNoBackend          = errors.New("surface: no backend available")
	ErrUnknownBackend     = errors.New("unknown backend")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// BackendError reports a backend that could not be opened by name.
type BackendError struct {
	Name string
	Err  error
}

func (e *BackendError) Error() string {
	return "surface: backend " + e.Name + ": " + e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// BackendCanvas is the name of the built-in gg software backend.
const BackendCanvas = "canvas"

func init() {
	Register(BackendCanvas, 10, func(width, height int, opts ...CanvasOption) (Surface, error) {
		return NewCanvas(width, height, opts...), nil
	}, nil)
}
