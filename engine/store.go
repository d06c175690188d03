package engine

import (
	"github.com/lixenwraith/orbit-defense/core"
)

// EntityAllocator hands out monotonically increasing ids shared by all stores of a world
type EntityAllocator struct {
	next core.Entity
}

// Next reserves a new entity id
func (a *EntityAllocator) Next() core.Entity {
	a.next++
	return a.next
}

// Reset restarts allocation, only valid together with clearing every store
func (a *EntityAllocator) Reset() {
	a.next = core.NoEntity
}

type storeEntry[T any] struct {
	val       T
	destroyed bool
}

// Store is an insertion-ordered container for one entity kind
// Destruction is two-phase: MarkDestroyed hides an entry from lookups and iteration,
// Compact frees it. Ids held elsewhere stay valid to look up (and fail) in between
type Store[T any] struct {
	ids       *EntityAllocator
	entries   map[core.Entity]*storeEntry[T]
	order     []core.Entity
	destroyed int
}

// NewStore creates a store allocating ids from ids
func NewStore[T any](ids *EntityAllocator) *Store[T] {
	return &Store[T]{
		ids:     ids,
		entries: make(map[core.Entity]*storeEntry[T]),
		order:   make([]core.Entity, 0, 64),
	}
}

// Insert adds a value under a freshly allocated id
func (s *Store[T]) Insert(val T) core.Entity {
	e := s.ids.Next()
	s.InsertAt(e, val)
	return e
}

// InsertAt attaches a value to an existing id, replacing any previous value
func (s *Store[T]) InsertAt(e core.Entity, val T) {
	if entry, exists := s.entries[e]; exists {
		if entry.destroyed {
			s.destroyed--
		}
		entry.val = val
		entry.destroyed = false
		return
	}
	s.entries[e] = &storeEntry[T]{val: val}
	s.order = append(s.order, e)
}

// Get returns a live value, destroyed and unknown ids report false
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	entry, ok := s.entries[e]
	if !ok || entry.destroyed {
		var zero T
		return zero, false
	}
	return entry.val, true
}

// Has reports whether e is live
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.Get(e)
	return ok
}

// IsDestroyed reports whether e is marked but not yet compacted
func (s *Store[T]) IsDestroyed(e core.Entity) bool {
	entry, ok := s.entries[e]
	return ok && entry.destroyed
}

// MarkDestroyed hides e from lookups until the next Compact
// Returns false when e is unknown or already destroyed
func (s *Store[T]) MarkDestroyed(e core.Entity) bool {
	entry, ok := s.entries[e]
	if !ok || entry.destroyed {
		return false
	}
	entry.destroyed = true
	s.destroyed++
	return true
}

// All returns live values in insertion order
// The returned slice is a snapshot, inserting during iteration is safe
func (s *Store[T]) All() []T {
	out := make([]T, 0, len(s.order)-s.destroyed)
	for _, e := range s.order {
		if entry := s.entries[e]; !entry.destroyed {
			out = append(out, entry.val)
		}
	}
	return out
}

// Entities returns live ids in insertion order
func (s *Store[T]) Entities() []core.Entity {
	out := make([]core.Entity, 0, len(s.order)-s.destroyed)
	for _, e := range s.order {
		if !s.entries[e].destroyed {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entries
func (s *Store[T]) Count() int {
	return len(s.order) - s.destroyed
}

// Len returns all stored entries including destroyed ones awaiting compaction
func (s *Store[T]) Len() int {
	return len(s.order)
}

// Compact frees destroyed entries in a single pass and returns their ids
func (s *Store[T]) Compact() []core.Entity {
	if s.destroyed == 0 {
		return nil
	}

	removed := make([]core.Entity, 0, s.destroyed)
	writeIdx := 0
	for _, e := range s.order {
		if s.entries[e].destroyed {
			delete(s.entries, e)
			removed = append(removed, e)
			continue
		}
		s.order[writeIdx] = e
		writeIdx++
	}
	s.order = s.order[:writeIdx]
	s.destroyed = 0
	return removed
}

// Clear removes everything
func (s *Store[T]) Clear() {
	s.entries = make(map[core.Entity]*storeEntry[T])
	s.order = make([]core.Entity, 0, 64)
	s.destroyed = 0
}
