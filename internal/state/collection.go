package state

import (
	"context"
	"sync"
)

// Collection is the in-memory mirror of one remote collection plus
// loading/error bookkeeping. Every remote operation is an explicit
// two-phase transition: Begin marks the pending phase, then exactly one of
// Resolve or Fail applies the outcome.
//
// Concurrent operations are deliberately not serialized: both run, and the
// last resolution to land wins on the mirrored items. Resolutions carry the
// context of the operation that initiated them; once that context is gone
// the resolution is dropped, so a dismissed caller never mutates the mirror.
type Collection[E any] struct {
	mu sync.RWMutex
	id func(E) string

	items    []E
	loading  bool
	errMsg   string
	selected *E
}

func NewCollection[E any](id func(E) string) *Collection[E] {
	return &Collection[E]{id: id, items: []E{}}
}

// Items returns a copy of the mirrored collection.
func (c *Collection[E]) Items() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[E]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the human-readable message of the last failed operation, or
// the empty string.
func (c *Collection[E]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}

// Select pins the item with the given id; returns false when it is not in
// the mirror.
func (c *Collection[E]) Select(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			e := c.items[i]
			c.selected = &e
			return true
		}
	}
	return false
}

func (c *Collection[E]) Selected() (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.selected == nil {
		var zero E
		return zero, false
	}
	return *c.selected, true
}

func (c *Collection[E]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

// Begin enters the pending phase: loading on, previous error cleared.
func (c *Collection[E]) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
	c.errMsg = ""
}

// Resolve applies a successful outcome. The mutate function receives the
// current items and returns the replacement slice; it runs under the
// collection lock. A resolution whose context is already done is dropped.
func (c *Collection[E]) Resolve(ctx context.Context, mutate func(items []E) []E) {
	if ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = mutate(c.items)
	if c.items == nil {
		c.items = []E{}
	}
	c.errMsg = ""
	c.loading = false
}

// Fail records a failed outcome: the message lands in the error slot and
// the stale items are preserved. A resolution whose context is already done
// is dropped.
func (c *Collection[E]) Fail(ctx context.Context, err error) {
	if ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.errMsg = err.Error()
	}
	c.loading = false
}
