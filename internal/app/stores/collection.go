package stores

import (
	"strings"
	"sync"
)

// Entity is the contract collection items satisfy. Clone must return a
// deep copy; readers only ever see clones taken under the lock, so a
// concurrent Mutate can never write into an entity a caller holds.
type Entity[T any] interface {
	EntityID() int64
	Clone() T
}

// Collection is the shared core of the course and group stores: an
// ordered list of entities guarded by a lock, with a store-owned
// monotonic identifier counter. Identifiers are never derived from the
// current length, so they stay unique even if deletion is added later.
// Newly created entities are prepended; seeded entities keep their
// original order.
type Collection[T Entity[T]] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64
	seeded bool
}

// Seed installs the initial dataset. It runs once; later calls are
// ignored. The counter is advanced past the largest seeded identifier.
func (c *Collection[T]) Seed(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seeded {
		return
	}
	c.items = append([]T(nil), items...)
	for _, item := range items {
		if id := item.EntityID(); id > c.nextID {
			c.nextID = id
		}
	}
	c.seeded = true
}

// NextID reserves and returns a fresh identifier.
func (c *Collection[T]) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	return c.nextID
}

// Prepend inserts a new entity at the front of the collection.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// Get returns a clone of the entity with the given identifier.
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether an entity with the given identifier exists.
func (c *Collection[T]) Contains(id int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return true
		}
	}
	return false
}

// Len returns the number of entities.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Filter returns clones of the entities matching pred, in collection
// order. The filtered view is recomputed on every call, never stored,
// and cloning happens inside the locked region.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}

// Each calls fn for every entity in order, under the read lock.
func (c *Collection[T]) Each(fn func(T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		fn(item)
	}
}

// Mutate applies fn to the entity with the given identifier under the
// write lock. Returns false when the entity does not exist.
func (c *Collection[T]) Mutate(id int64, fn func(T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			fn(item)
			return true
		}
	}
	return false
}

// matchesSearch reports whether any of the fields contains term,
// case-insensitively. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// matchesCategory reports whether value passes the category selector.
// "all" (or an unset selector) passes everything.
func matchesCategory(selected, value string) bool {
	return selected == "" || selected == "all" || selected == value
}
