package resolver

import "sort"

// Catalog is a read-only index of Marvel-sourced records keyed by display
// name. Keys are sorted once so every lookup that takes "the first" key is
// deterministic.
type Catalog[T any] struct {
	entries map[string]T
	keys    []string
}

// NewCatalog indexes entries. The map is copied; later changes to it do not
// affect the catalog.
func NewCatalog[T any](entries map[string]T) *Catalog[T] {
	c := &Catalog[T]{
		entries: make(map[string]T, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}
	for k, v := range entries {
		c.entries[k] = v
		c.keys = append(c.keys, k)
	}
	sort.Strings(c.keys)
	return c
}

// Get returns the record stored under key.
func (c *Catalog[T]) Get(key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	v, ok := c.entries[key]
	return v, ok
}

// Keys returns the catalog keys in sorted order. The slice is shared and must
// not be modified.
func (c *Catalog[T]) Keys() []string {
	if c == nil {
		return nil
	}
	return c.keys
}

// Len returns the number of entries.
func (c *Catalog[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}
