// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry maps string identifiers to canvases.
type Registry struct {
	mu       sync.RWMutex
	canvases map[string]Canvas
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Lookup.
func NewRegistry() *Registry {
	return &Registry{
		canvases: make(map[string]Canvas),
	}
}

// Register adds a canvas to the global registry.
// Registering an identifier that already exists replaces the previous entry.
func Register(id string, c Canvas) {
	globalRegistry.Register(id, c)
}

// Unregister removes a canvas from the global registry.
func Unregister(id string) {
	globalRegistry.Unregister(id)
}

// Lookup returns the canvas registered under id in the global registry.
func Lookup(id string) (Canvas, error) {
	return globalRegistry.Lookup(id)
}

// IDs returns all identifiers in the global registry, sorted.
func IDs() []string {
	return globalRegistry.IDs()
}

// Register adds a canvas to this registry. A nil canvas is ignored.
func (r *Registry) Register(id string, c Canvas) {
	if c == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.canvases == nil {
		r.canvases = make(map[string]Canvas)
	}
	r.canvases[id] = c
}

// Unregister removes a canvas from this registry.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.canvases, id)
}

// Lookup returns the canvas registered under id.
func (r *Registry) Lookup(id string) (Canvas, error) {
	r.mu.RLock()
	c, ok := r.canvases[id]
	r.mu.RUnlock()

	if !ok {
		return nil, &CanvasNotFoundError{ID: id}
	}
	return c, nil
}

// IDs returns all registered identifiers, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.canvases) == 0 {
		return nil
	}
	ids := make([]string, 0, len(r.canvases))
	for id := range r.canvases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Errors.
var (
	// ErrCanvasNotFound is matched by errors.Is for every CanvasNotFoundError.
	ErrCanvasNotFound = errors.New("surface: canvas not found")

	// ErrCanvasClosed is returned when a closed canvas is used.
	ErrCanvasClosed = errors.New("surface: canvas closed")
)

// CanvasNotFoundError indicates no canvas is registered under an identifier.
type CanvasNotFoundError struct {
	ID string
}

func (e *CanvasNotFoundError) Error() string {
	return "surface: canvas not found: " + e.ID
}

// Is reports whether target is ErrCanvasNotFound.
func (e *CanvasNotFoundError) Is(target error) bool {
	return target == ErrCanvasNotFound
}
