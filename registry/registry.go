/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/site"
)

var tableNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Entry maps a site and entity to a physical table.
type Entry struct {
	Site   site.Site `yaml:"site"`
	Entity Entity    `yaml:"entity"`
	Table  string    `yaml:"table"`
	// Shared tables hold rows for both sites and are filtered by the site column.
	Shared bool `yaml:"shared"`
}

type key struct {
	site   site.Site
	entity Entity
}

// Registry is a thread-safe site/entity to table lookup.
type Registry struct {
	mu      sync.RWMutex
	entries map[key]Entry
}

// New creates a registry holding entries. Later entries replace earlier ones
// for the same site and entity.
func New(entries ...Entry) *Registry {
	r := &Registry{entries: make(map[key]Entry, len(entries))}
	for _, e := range entries {
		r.Set(e)
	}
	return r
}

// Default returns the registry for every entity in the site catalogs.
func Default() *Registry {
	r := New()
	for _, s := range site.All() {
		for _, e := range catalog[s] {
			r.Set(Entry{Site: s, Entity: e, Table: TableName(s, e), Shared: shared[e]})
		}
	}
	return r
}

// Register adds an entry, failing if the site/entity pair is already mapped.
func (r *Registry) Register(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{e.Site, e.Entity}
	if _, exists := r.entries[k]; exists {
		return errors.NewValidationError("entity",
			fmt.Sprintf("entity %q already registered for site %q", e.Entity, e.Site))
	}
	r.entries[k] = e
	return nil
}

// Set adds or replaces an entry.
func (r *Registry) Set(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key{e.Site, e.Entity}] = e
}

// Lookup returns the entry for a site and entity.
func (r *Registry) Lookup(s site.Site, e Entity) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[key{s, e}]
	if !ok {
		return Entry{}, errors.NewUnknownTableError(string(s), string(e))
	}
	return entry, nil
}

// Resolve returns the physical table name for a site and entity.
// Unmapped pairs are an error; no name is guessed.
func (r *Registry) Resolve(s site.Site, e Entity) (string, error) {
	entry, err := r.Lookup(s, e)
	if err != nil {
		return "", err
	}
	return entry.Table, nil
}

// Entries returns all entries ordered by site, then entity.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Site != out[j].Site {
			return out[i].Site < out[j].Site
		}
		return out[i].Entity < out[j].Entity
	})
	return out
}

// Validate checks that every catalog entity resolves for its site, that table
// names are well formed, and that only shared entries reuse a table.
func (r *Registry) Validate() error {
	entries := r.Entries()

	for _, s := range site.All() {
		for _, e := range catalog[s] {
			if _, err := r.Lookup(s, e); err != nil {
				return err
			}
		}
	}

	owners := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if !e.Site.Valid() {
			return errors.NewValidationError("site", fmt.Sprintf("unknown site %q", e.Site))
		}
		if e.Entity == "" {
			return errors.NewValidationError("entity", "entity name is required")
		}
		if !tableNamePattern.MatchString(e.Table) {
			return errors.NewValidationError("table",
				fmt.Sprintf("invalid table name %q for %s/%s", e.Table, e.Site, e.Entity))
		}
		prev, seen := owners[e.Table]
		if !seen {
			owners[e.Table] = e
			continue
		}
		if !prev.Shared || !e.Shared {
			return errors.NewValidationError("table",
				fmt.Sprintf("table %q mapped by %s/%s and %s/%s but not shared",
					e.Table, prev.Site, prev.Entity, e.Site, e.Entity))
		}
	}
	return nil
}
