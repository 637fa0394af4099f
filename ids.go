// Package sparsecs implements a sparse-set Entity Component System for Go.
//
// Features:
//   - One packed store per component type with O(1) add, remove and lookup.
//   - FIFO recycling of entity ids and of free component slots.
//   - Fixed 256-bit signatures for system membership.
//   - Systems track the exact set of entities matching their signatures,
//     maintained incrementally on every component mutation.
//   - Deferred entity deletion from inside a system tick.
package sparsecs

import "fmt"

// MaxComponentTypes is the number of distinct component types a World can
// register. It is also the width of a Signature.
const MaxComponentTypes = 256

// EntityID is an opaque handle for an entity. It is unique among live
// entities and may be handed out again once the entity has been destroyed.
type EntityID uint64

// ComponentKey is implemented by every ComponentID regardless of its type
// parameter. It lets a Signature be built from ids of different component
// types.
type ComponentKey interface {
	// Index is the position of the component type in the registry and its bit
	// in a Signature.
	Index() uint16
	// Registered reports whether the id was handed out by a registry.
	Registered() bool
}

// ComponentID identifies a registered component type T. The zero value is an
// unregistered id.
type ComponentID[T any] struct {
	raw uint16 // index + 1
}

func newComponentID[T any](index uint16) ComponentID[T] {
	return ComponentID[T]{raw: index + 1}
}

// Index returns the registry position of the component type.
func (id ComponentID[T]) Index() uint16 {
	return id.raw - 1
}

// Registered reports whether the id was returned by a registry.
func (id ComponentID[T]) Registered() bool {
	return id.raw != 0
}

func (id ComponentID[T]) String() string {
	if !id.Registered() {
		return fmt.Sprintf("ComponentID[%s](unregistered)", typeName[T]())
	}
	return fmt.Sprintf("ComponentID[%s](%d)", typeName[T](), id.Index())
}

// SystemID identifies a registered system of concrete type S. Like a
// ComponentID it is only meaningful in the world that returned it: a handle
// from another world resolves to whatever system of type S sits at the same
// position, or panics if there is none.
type SystemID[S System] struct {
	raw uint32 // index + 1
}

func newSystemID[S System](index int) SystemID[S] {
	return SystemID[S]{raw: uint32(index) + 1}
}

// Index returns the position of the system in registration order.
func (id SystemID[S]) Index() int {
	return int(id.raw) - 1
}
