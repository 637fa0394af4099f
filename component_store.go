package sparsecs

import (
	"iter"
	"reflect"

	"github.com/rotisserie/eris"
)

// componentStorage is the type-erased view of a ComponentStore that the
// registry uses for destruction fan-out and counting.
type componentStorage interface {
	Remove(e EntityID) bool
	Has(e EntityID) bool
	Size() int
	Clear()
	Type() reflect.Type
}

// slot is one packed entry. A slot with valid=false is free and queued for
// reuse.
type slot[T any] struct {
	value  T
	entity EntityID
	valid  bool
}

// ComponentStore is a sparse set holding the T component of every entity that
// has one.
//
// Removed slots are not compacted. They are marked free and handed out again,
// oldest first, by later Adds, so the position of every other component is
// stable across removals. A pointer returned by Get stays valid until the next
// Add to the same store, which may have to grow the packed slice.
type ComponentStore[T any] struct {
	slots []slot[T]
	index sparseIndex
	free  fifo[int]
}

var _ componentStorage = (*ComponentStore[struct{}])(nil)

// NewComponentStore returns an empty store with room for capacity components.
func NewComponentStore[T any](capacity int) *ComponentStore[T] {
	return &ComponentStore[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

// Add stores value as the component of e. If e already has one it is
// overwritten in place; otherwise the oldest free slot is reused before the
// packed slice grows.
func (s *ComponentStore[T]) Add(e EntityID, value T) {
	if i, ok := s.index.get(e); ok {
		s.slots[i].value = value
		return
	}
	if i, ok := s.free.pop(); ok {
		s.slots[i] = slot[T]{value: value, entity: e, valid: true}
		s.index.set(e, i)
		return
	}
	s.slots = append(s.slots, slot[T]{value: value, entity: e, valid: true})
	s.index.set(e, len(s.slots)-1)
}

// Remove frees the slot of e and erases its mapping. It reports false, and
// changes nothing, when e has no component in this store.
func (s *ComponentStore[T]) Remove(e EntityID) bool {
	i, ok := s.index.get(e)
	if !ok {
		return false
	}
	s.slots[i] = slot[T]{}
	s.free.push(i)
	s.index.erase(e)
	return true
}

// Get returns a pointer to the component of e, or ErrComponentNotFound.
func (s *ComponentStore[T]) Get(e EntityID) (*T, error) {
	i, ok := s.index.get(e)
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotFound, "entity %d has no %s", e, typeName[T]())
	}
	return &s.slots[i].value, nil
}

// Has reports whether e has a component in this store.
func (s *ComponentStore[T]) Has(e EntityID) bool {
	_, ok := s.index.get(e)
	return ok
}

// Size returns the number of live components, not counting free slots.
func (s *ComponentStore[T]) Size() int {
	return len(s.slots) - s.free.len()
}

// All iterates the live components in slot order, skipping free slots.
// Adding or removing components of this store while iterating is not
// supported.
func (s *ComponentStore[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := range s.slots {
			sl := &s.slots[i]
			if !sl.valid {
				continue
			}
			if !yield(sl.entity, &sl.value) {
				return
			}
		}
	}
}

// Clear drops every component while keeping the allocated slots.
func (s *ComponentStore[T]) Clear() {
	clear(s.slots)
	s.slots = s.slots[:0]
	s.index.reset()
	s.free.clear()
}

// Type returns the component type held by the store.
func (s *ComponentStore[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}
