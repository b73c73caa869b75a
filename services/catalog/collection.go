// File: services/catalog/collection.go
package catalog

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a targeted record id is absent from the
// collection. Mutations of missing ids fail loudly instead of silently
// doing nothing.
var ErrNotFound = errors.New("record not found")

// Record is the shape every managed entity exposes: a stable id and an
// active flag. WithID and WithActive return copies so records stay value
// types.
type Record[T any] interface {
	GetID() string
	WithID(string) T
	IsActive() bool
	WithActive(bool) T
}

// Collection is an ordered, mutex-guarded collection of records. New
// records are appended; targeted mutations preserve the order of all
// other entries.
type Collection[T Record[T]] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection returns an empty collection.
func NewCollection[T Record[T]]() *Collection[T] {
	return &Collection[T]{}
}

// Create assigns a fresh uuid when the draft has none, activates the
// record, and appends it.
func (c *Collection[T]) Create(draft T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := draft
	if rec.GetID() == "" {
		rec = rec.WithID(uuid.New().String())
	}
	rec = rec.WithActive(true)
	c.items = append(c.items, rec)
	return rec
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, rec := range c.items {
		if rec.GetID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Update replaces the record with the given id by patch(current).
// Returns ErrNotFound when the id is absent.
func (c *Collection[T]) Update(id string, patch func(T) T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, rec := range c.items {
		if rec.GetID() == id {
			c.items[i] = patch(rec)
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the record with the given id, keeping the remaining
// entries in order. Returns ErrNotFound when the id is absent.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, rec := range c.items {
		if rec.GetID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ToggleActive flips the active flag on the record with the given id.
func (c *Collection[T]) ToggleActive(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, rec := range c.items {
		if rec.GetID() == id {
			c.items[i] = rec.WithActive(!rec.IsActive())
			return nil
		}
	}
	return ErrNotFound
}

// Items returns a copy of the collection in display order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// replace swaps the whole collection in one step. Used by refreshes.
func (c *Collection[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}
