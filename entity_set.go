package sparsecs

import (
	"iter"
	"slices"
)

// EntitySet is the set of entities a system tracks for one signature. Members
// are kept packed for iteration; removal moves the last member into the hole,
// so iteration order is not stable across removals.
type EntitySet struct {
	dense []EntityID
	index sparseIndex
}

// NewEntitySet returns an empty set.
func NewEntitySet() *EntitySet {
	return &EntitySet{}
}

// Insert adds e and reports whether it was absent.
func (s *EntitySet) Insert(e EntityID) bool {
	if _, ok := s.index.get(e); ok {
		return false
	}
	s.dense = append(s.dense, e)
	s.index.set(e, len(s.dense)-1)
	return true
}

// Remove deletes e and reports whether it was present.
func (s *EntitySet) Remove(e EntityID) bool {
	i, ok := s.index.get(e)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	if i != last {
		moved := s.dense[last]
		s.dense[i] = moved
		s.index.set(moved, i)
	}
	s.dense = s.dense[:last]
	s.index.erase(e)
	return true
}

// Contains reports whether e is in the set.
func (s *EntitySet) Contains(e EntityID) bool {
	_, ok := s.index.get(e)
	return ok
}

// Len returns the number of members.
func (s *EntitySet) Len() int {
	return len(s.dense)
}

// All iterates the members. The set must not be modified while iterating;
// inside a system tick use SystemBase.MarkForDeletion instead of destroying
// entities directly.
func (s *EntitySet) All() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, e := range s.dense {
			if !yield(e) {
				return
			}
		}
	}
}

// Slice returns a copy of the members.
func (s *EntitySet) Slice() []EntityID {
	return slices.Clone(s.dense)
}

// Clear removes every member.
func (s *EntitySet) Clear() {
	for _, e := range s.dense {
		s.index.erase(e)
	}
	s.dense = s.dense[:0]
}
