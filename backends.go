/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package adminpanel

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/innovexadevelopment/admin-panel-sub000/datastore"
)

// BackendFactory opens a backend. The returned closer may be nil.
type BackendFactory func(ctx context.Context) (datastore.Backend, func(context.Context) error, error)

// Backends is a thread-safe set of named backend factories, so the backend
// can be chosen by configuration.
type Backends struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

// NewBackends creates an empty set.
func NewBackends() *Backends {
	return &Backends{
		factories: make(map[string]BackendFactory),
	}
}

// Register stores the factory under name.
func (b *Backends) Register(name string, f BackendFactory) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.factories[name]; exists {
		return fmt.Errorf("backend %q already registered", name)
	}
	b.factories[name] = f
	return nil
}

// Open runs the factory registered under name.
func (b *Backends) Open(ctx context.Context, name string) (datastore.Backend, func(context.Context) error, error) {
	b.mu.RLock()
	f, exists := b.factories[name]
	b.mu.RUnlock()

	if !exists {
		return nil, nil, fmt.Errorf("backend %q not found", name)
	}
	backend, closer, err := f(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open backend %q: %w", name, err)
	}
	if closer == nil {
		closer = func(context.Context) error { return nil }
	}
	return backend, closer, nil
}

// Names returns the registered backend names, sorted.
func (b *Backends) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.factories))
	for k := range b.factories {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
