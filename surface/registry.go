// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/gogpu/g2d"
)

// Factory creates a new Surface with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Surface, error)

// Backend describes a registered surface backend.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

// Registry maps backend names to surface factories.
//
// Applications that render through a GPU layer register it next to the
// built-in backends and pick by name or by priority:
//
//	r := surface.DefaultRegistry()
//	r.Register("gpu", 100, gpuFactory, gpuAvailable)
//	s, err := r.NewSurface(surface.DefaultOptions(800, 600))
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Backend
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Backend),
	}
}

// DefaultRegistry returns a new registry holding the built-in backends:
// "image" (ImageSurface, priority 10) and "recorder" (Recorder, priority 0).
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("image", 10, func(opts Options) (Surface, error) {
		if opts.Width <= 0 || opts.Height <= 0 {
			return nil, &InvalidSizeError{Width: opts.Width, Height: opts.Height}
		}
		return newImageSurface(opts), nil
	}, nil)
	r.Register("recorder", 0, func(opts Options) (Surface, error) {
		return newRecorder(opts), nil
	}, nil)
	return r
}

// Register adds a backend to this registry. If available is nil, the
// backend is assumed always available. Registering a name that already
// exists replaces the previous entry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Backend)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &Backend{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the named backend.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return Backend{}, false
	}
	return *entry, true
}

// NewSurface creates a surface using the best available backend. Backends
// whose factory fails are skipped; the last error is returned when none
// succeeds.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range available {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		g2d.Logger().Warn("surface: backend failed",
			slog.String("backend", name), slog.String("error", err.Error()))
		lastErr = err
	}
	return nil, lastErr
}

// NewSurfaceByName creates a surface using a specific backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	s, err := entry.Factory(opts)
	if err != nil {
		return nil, err
	}
	g2d.Logger().Info("surface: created",
		slog.String("backend", name),
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height))
	return s, nil
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*Backend, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no surface backends are registered
	// or available on the current system.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrClosed is returned by operations on a closed surface.
	ErrClosed = errors.New("surface: closed")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// InvalidSizeError is returned for non-positive surface dimensions.
type InvalidSizeError struct {
	Width, Height int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("surface: invalid size %dx%d", e.Width, e.Height)
}
