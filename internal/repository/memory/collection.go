// Package memory is the in-process entity store. It is the default backend and the one the
// dashboard seeds with its built-in data set.
package memory

import (
	"context"
	"sync"

	"docdash/internal/repository"
)

// Collection is an ordered, id-indexed list safe for concurrent use.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
}

// NewCollection builds a collection over a copy of initial.
func NewCollection[T any](idOf func(T) string, initial ...T) *Collection[T] {
	items := make([]T, len(initial))
	copy(items, initial)
	return &Collection[T]{items: items, idOf: idOf}
}

var _ repository.Repository[int] = (*Collection[int])(nil)

// List returns a snapshot of every item.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// GetByID returns a copy of the item with id.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			found := item
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Add appends item. Callers keep ids unique.
func (c *Collection[T]) Add(ctx context.Context, item T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
	stored := item
	return &stored, nil
}

// Remove deletes the item with id, keeping the order of the rest.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if c.idOf(item) == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Len returns the number of stored items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
