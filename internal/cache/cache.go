// Package cache is an explicit in-memory list cache for remote entity
// lists. The invalidation contract: creating, updating or deleting an
// entity of type X invalidates the cached list of X, so the next read
// re-fetches from the service. Creating a sale additionally invalidates
// the product list, because the service adjusts stock.
package cache

import "sync"

// List caches one entity list between re-fetches.
type List[T any] struct {
	mu    sync.RWMutex
	items []T
	valid bool
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Get returns the cached list and whether it is valid. The returned
// slice is a copy; callers may mutate it freely.
func (c *List[T]) Get() ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		return nil, false
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, true
}

// Put replaces the cached list and marks it valid.
func (c *List[T]) Put(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.valid = true
}

// Append adds one item to a valid cache without re-fetching. Used when
// the caller already holds the authoritative server copy, e.g. a
// customer created inline during a sale. No-op while invalid.
func (c *List[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return
	}
	c.items = append(c.items, item)
}

// Invalidate drops the cached list.
func (c *List[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.valid = false
}

// Invalidator is the piece of List a session reset needs. Logout
// invalidates every registered cache so no per-user data survives a
// session change.
type Invalidator interface {
	Invalidate()
}
