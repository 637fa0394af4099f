package sparsecs

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// Resources holds world-scoped singletons such as a clock, an input snapshot
// or a shared random source, at most one per type. Systems reach them through
// SystemBase.Resources.
//
// Slots of removed resources are reused by the next AddResource.
type Resources struct {
	items []any
	types map[reflect.Type]int
	free  fifo[int]
}

// NewResources returns an empty collection.
func NewResources() *Resources {
	return &Resources{types: make(map[reflect.Type]int)}
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.types)
}

// Clear removes every resource.
func (r *Resources) Clear() {
	clear(r.items)
	r.items = r.items[:0]
	clear(r.types)
	r.free.clear()
}

// AddResource stores res as the resource of type T. A second resource of the
// same type returns ErrDuplicateRegistration and a nil res returns
// ErrInvalidConfig; neither stores anything.
func AddResource[T any](r *Resources, res *T) error {
	if res == nil {
		return eris.Wrapf(ErrInvalidConfig, "nil %s resource", typeName[T]())
	}
	t := reflect.TypeFor[T]()
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if _, ok := r.types[t]; ok {
		return eris.Wrapf(ErrDuplicateRegistration, "resource %s", t)
	}
	slot, ok := r.free.pop()
	if ok {
		r.items[slot] = res
	} else {
		r.items = append(r.items, res)
		slot = len(r.items) - 1
	}
	r.types[t] = slot
	return nil
}

// GetResource returns the resource of type T, or ErrResourceNotFound.
func GetResource[T any](r *Resources) (*T, error) {
	slot, ok := r.types[reflect.TypeFor[T]()]
	if !ok {
		return nil, eris.Wrapf(ErrResourceNotFound, "%s", typeName[T]())
	}
	return r.items[slot].(*T), nil
}

// HasResource reports whether a resource of type T is stored.
func HasResource[T any](r *Resources) bool {
	_, ok := r.types[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource drops the resource of type T and reports whether there was
// one.
func RemoveResource[T any](r *Resources) bool {
	t := reflect.TypeFor[T]()
	slot, ok := r.types[t]
	if !ok {
		return false
	}
	r.items[slot] = nil
	delete(r.types, t)
	r.free.push(slot)
	return true
}
