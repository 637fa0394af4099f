package sparsecs

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// ComponentRegistry owns one ComponentStore per registered component type.
// Stores live in a fixed array indexed by ComponentID, so dispatch never
// hashes; the type map is only consulted at registration and by
// ComponentTypeOf.
type ComponentRegistry struct {
	stores   [MaxComponentTypes]componentStorage
	types    map[reflect.Type]uint16
	count    uint16
	capacity int // initial slot capacity for new stores
}

// NewComponentRegistry returns an empty registry whose stores start with room
// for capacity components each.
func NewComponentRegistry(capacity int) *ComponentRegistry {
	return &ComponentRegistry{
		types:    make(map[reflect.Type]uint16, 16),
		capacity: capacity,
	}
}

// Len returns the number of registered component types.
func (r *ComponentRegistry) Len() int {
	return int(r.count)
}

// RegisterComponent assigns the next id to T and allocates its store.
// Registering T again returns the id it already has. At MaxComponentTypes it
// returns ErrCapacityExceeded.
func RegisterComponent[T any](r *ComponentRegistry) (ComponentID[T], error) {
	t := reflect.TypeFor[T]()
	if idx, ok := r.types[t]; ok {
		return newComponentID[T](idx), nil
	}
	if int(r.count) >= MaxComponentTypes {
		return ComponentID[T]{}, eris.Wrapf(ErrCapacityExceeded,
			"cannot register %s: %d component types already registered", t, MaxComponentTypes)
	}
	idx := r.count
	r.stores[idx] = NewComponentStore[T](r.capacity)
	r.types[t] = idx
	r.count++
	return newComponentID[T](idx), nil
}

// LookupComponentType returns the id T was registered under, or
// ErrUnknownComponentType.
func LookupComponentType[T any](r *ComponentRegistry) (ComponentID[T], error) {
	t := reflect.TypeFor[T]()
	idx, ok := r.types[t]
	if !ok {
		return ComponentID[T]{}, eris.Wrapf(ErrUnknownComponentType, "%s is not registered", t)
	}
	return newComponentID[T](idx), nil
}

// StoreOf returns the store behind id, for iterating every T at once.
//
// Parameters:
//   - r: The registry id was obtained from.
//   - id: A component id for T.
//
// Returns:
//   - The store holding every T component.
//   - ErrUnknownComponentType for the zero id, or for an id whose slot holds
//     another type (an id from a different world).
//
// An index past the registered range panics with ErrInvalidHandle.
func StoreOf[T any](r *ComponentRegistry, id ComponentID[T]) (*ComponentStore[T], error) {
	if !id.Registered() {
		return nil, eris.Wrapf(ErrUnknownComponentType, "%s", id)
	}
	if id.Index() >= r.count {
		panic(eris.Wrapf(ErrInvalidHandle, "%s out of range, %d types registered", id, r.count))
	}
	s, ok := r.stores[id.Index()].(*ComponentStore[T])
	if !ok {
		return nil, eris.Wrapf(ErrUnknownComponentType, "%s refers to %s", id, r.stores[id.Index()].Type())
	}
	return s, nil
}

// Lookup returns the T component of e. Systems use it to read the
// components of the entities they track.
func Lookup[T any](r *ComponentRegistry, e EntityID, id ComponentID[T]) (*T, error) {
	s, err := StoreOf(r, id)
	if err != nil {
		return nil, err
	}
	return s.Get(e)
}

func addComponent[T any](r *ComponentRegistry, e EntityID, id ComponentID[T], value T) error {
	s, err := StoreOf(r, id)
	if err != nil {
		return err
	}
	s.Add(e, value)
	return nil
}

// removeComponent reports ErrComponentNotFound when e has no T; the store is
// left untouched in that case.
func removeComponent[T any](r *ComponentRegistry, e EntityID, id ComponentID[T]) error {
	s, err := StoreOf(r, id)
	if err != nil {
		return err
	}
	if !s.Remove(e) {
		return eris.Wrapf(ErrComponentNotFound, "entity %d has no %s", e, typeName[T]())
	}
	return nil
}

func hasComponent[T any](r *ComponentRegistry, e EntityID, id ComponentID[T]) bool {
	s, err := StoreOf(r, id)
	if err != nil {
		return false
	}
	return s.Has(e)
}

func componentCount[T any](r *ComponentRegistry, id ComponentID[T]) (int, error) {
	s, err := StoreOf(r, id)
	if err != nil {
		return 0, err
	}
	return s.Size(), nil
}

// EntityDestroyed removes e from every store. Stores without a component for
// e are left as they are.
func (r *ComponentRegistry) EntityDestroyed(e EntityID) {
	for i := range r.count {
		r.stores[i].Remove(e)
	}
}

// clear empties every store but keeps the registered types.
func (r *ComponentRegistry) clear() {
	for i := range r.count {
		r.stores[i].Clear()
	}
}
