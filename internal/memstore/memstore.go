// Package memstore is the in-memory storage engine behind every repository.
// A single process-wide Sequence hands out ids, so ids are unique across all
// entity kinds, not just within one collection.
package memstore

import "sync"

type Sequence struct {
	mu   sync.Mutex
	last uint64
}

func NewSequence() *Sequence { return &Sequence{} }

func (s *Sequence) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// Collection is a mutex-guarded map from id to record. Values are stored by
// value, so callers always get independent copies of the record struct.
type Collection[T any] struct {
	mu    sync.RWMutex
	seq   *Sequence
	items map[uint64]T
	order []uint64
}

func NewCollection[T any](seq *Sequence) *Collection[T] {
	return &Collection[T]{
		seq:   seq,
		items: make(map[uint64]T),
	}
}

// Insert allocates the next id, builds the record through fn and stores it.
func (c *Collection[T]) Insert(fn func(id uint64) T) T {
	id := c.seq.Next()
	item := fn(id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = item
	c.order = append(c.order, id)
	return item
}

func (c *Collection[T]) Get(id uint64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// All returns the records in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		if item, ok := c.items[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Replace swaps the stored record for the result of fn under the write lock,
// so a read-merge-write update cannot interleave with another writer.
func (c *Collection[T]) Replace(id uint64, fn func(current T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := fn(current)
	c.items[id] = updated
	return updated, true
}

func (c *Collection[T]) Delete(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, stored := range c.order {
		if stored == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
