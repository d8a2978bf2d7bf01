// SPDX-License-Identifier: MIT
// Package registry holds named function values for the scalar catalogues.
//
// Each catalogue (interpolation, fade, distance, ...) owns one Registry. The
// built-in entries are registered at package init; callers may add custom
// entries at runtime and then refer to them by name (e.g. from a pipeline
// file). Entries are never removed and never replaced silently.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknown is returned by Lookup for names that were never registered.
var ErrUnknown = errors.New("registry: unknown name")

// ErrDuplicate is returned by Register when the name is already taken.
var ErrDuplicate = errors.New("registry: duplicate name")

// ErrEmptyName is returned by Register for a blank name.
var ErrEmptyName = errors.New("registry: empty name")

// Registry maps case-insensitive names to values of type T.
type Registry[T any] struct {
	kind    string
	mu      sync.RWMutex
	entries map[string]T
}

// New creates an empty registry; kind prefixes error messages.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, entries: make(map[string]T)}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds value under name.
func (r *Registry[T]) Register(name string, value T) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("%s: %w", r.kind, ErrEmptyName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("%s: %q: %w", r.kind, name, ErrDuplicate)
	}
	r.entries[key] = value

	return nil
}

// MustRegister is Register for package init; it panics on failure.
func (r *Registry[T]) MustRegister(name string, value T) {
	if err := r.Register(name, value); err != nil {
		panic(err)
	}
}

// Lookup returns the value registered under name.
func (r *Registry[T]) Lookup(name string) (T, error) {
	r.mu.RLock()
	v, ok := r.entries[normalize(name)]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %q: %w", r.kind, name, ErrUnknown)
	}

	return v, nil
}

// Names returns all registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
