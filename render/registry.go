// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/modeler"
)

// RegistryEntry represents a registered renderer backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: GPU backends (HAL over Vulkan, Metal, D3D12)
	//   - 10: Pure software backends
	Priority int

	// Backend opens renderers.
	Backend Backend

	// Available reports if the backend can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages registered renderer backends.
//
// A Registry is itself a Backend: Open tries every available entry in
// priority order and returns the first renderer that opens.
//
// Example registration:
//
//	func init() {
//	    render.Register("metal", 100, metalBackend{}, metalAvailable)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Default.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Default returns the global registry.
func Default() *Registry {
	return globalRegistry
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, b Backend, available func() bool) {
	globalRegistry.Register(name, priority, b, available)
}

// Lookup returns a backend from the global registry by name.
func Lookup(name string) (Backend, error) {
	return globalRegistry.Lookup(name)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, b Backend, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Backend:   b,
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

// Get returns a copy of the entry for name.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// Lookup returns the named backend if it is registered and available.
func (r *Registry) Lookup(name string) (Backend, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBackendNotFound, name)
	}
	if !entry.Available() {
		return nil, fmt.Errorf("%w: %s unavailable", ErrNoBackendAvailable, name)
	}
	return entry.Backend, nil
}

// Name implements Backend.
func (r *Registry) Name() string {
	return "auto"
}

// Open implements Backend by opening the best available backend.
// Failures are joined so the caller sees why every candidate was rejected.
func (r *Registry) Open(cfg Config) (Renderer, error) {
	r.mu.RLock()
	names := r.sortedNames(true)
	entries := make([]*RegistryEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, r.entries[name])
	}
	r.mu.RUnlock()

	if len(entries) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, e := range entries {
		rr, err := e.Backend.Open(cfg)
		if err == nil {
			modeler.Logger().Info("render: backend selected", "backend", e.Name)
			return rr, nil
		}
		modeler.Logger().Warn("render: backend failed to open", "backend", e.Name, "err", err)
		errs = append(errs, fmt.Errorf("%s: %w", e.Name, err))
		if errors.Is(err, ErrInvalidSurface) || errors.Is(err, ErrInvalidConfig) {
			// Every backend would reject the same input.
			break
		}
	}
	return nil, errors.Join(errs...)
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	entries := make([]*RegistryEntry, 0, len(r.entries))
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

var _ Backend = (*Registry)(nil)
