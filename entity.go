package sparsecs

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Entity is a handle pairing an EntityID with the World it lives in. It holds
// no other state and is cheap to copy.
//
// Ids are recycled, so a handle kept past Destroy may later refer to a new
// entity that received the same id.
type Entity struct {
	id    EntityID
	world *World
}

// ID returns the entity id.
func (e Entity) ID() EntityID {
	return e.id
}

// World returns the world the entity belongs to.
func (e Entity) World() *World {
	return e.world
}

// Alive reports whether the id is currently alive in its world.
func (e Entity) Alive() bool {
	return e.world != nil && e.world.entities.alive(e.id)
}

// Signature returns the set of component types the entity currently has.
func (e Entity) Signature() Signature {
	if e.world == nil {
		return Signature{}
	}
	return e.world.systems.signature(e.id)
}

// Destroy removes the entity from its world. See World.DestroyEntity.
func (e Entity) Destroy() error {
	if e.world == nil {
		return eris.Wrapf(ErrEntityNotFound, "entity %d has no world", e.id)
	}
	return e.world.DestroyEntity(e.id)
}

func (e Entity) check() error {
	if !e.Alive() {
		return eris.Wrapf(ErrEntityNotFound, "entity %d", e.id)
	}
	return nil
}

// AddComponent gives e the component value of type T, overwriting any T it
// already has, and updates the systems tracking e.
//
// Parameters:
//   - e: A live entity.
//   - id: The id T was registered under in e's world.
//   - value: The component value, copied into the store.
//
// Returns:
//   - ErrEntityNotFound if e is not alive.
//   - ErrUnknownComponentType if id is not registered in e's world.
//
// On error nothing changes.
func AddComponent[T any](e Entity, id ComponentID[T], value T) error {
	if err := e.check(); err != nil {
		return err
	}
	w := e.world
	if err := addComponent(w.components, e.id, id, value); err != nil {
		return err
	}
	sig := w.systems.signature(e.id)
	sig.setBit(id.Index())
	w.systems.EntitySignatureChanged(e.id, sig)
	if ce := w.log.Check(zap.DebugLevel, "component added"); ce != nil {
		ce.Write(zap.Uint64("entity", uint64(e.id)), zap.String("type", typeName[T]()))
	}
	if HasSubscribers[ComponentAdded](w.events) {
		Publish(w.events, ComponentAdded{World: w.id, Entity: e.id, Component: id.Index(), Signature: sig})
	}
	return nil
}

// RemoveComponent removes the T component of e and updates the systems
// tracking e. If e has no T it returns ErrComponentNotFound and nothing
// changes.
func RemoveComponent[T any](e Entity, id ComponentID[T]) error {
	if err := e.check(); err != nil {
		return err
	}
	w := e.world
	if err := removeComponent(w.components, e.id, id); err != nil {
		return err
	}
	sig := w.systems.signature(e.id)
	sig.resetBit(id.Index())
	w.systems.EntitySignatureChanged(e.id, sig)
	if ce := w.log.Check(zap.DebugLevel, "component removed"); ce != nil {
		ce.Write(zap.Uint64("entity", uint64(e.id)), zap.String("type", typeName[T]()))
	}
	if HasSubscribers[ComponentRemoved](w.events) {
		Publish(w.events, ComponentRemoved{World: w.id, Entity: e.id, Component: id.Index(), Signature: sig})
	}
	return nil
}

// GetComponent returns a pointer to the T component of e, or
// ErrComponentNotFound. The pointer is valid until the next AddComponent of
// type T in the same world.
func GetComponent[T any](e Entity, id ComponentID[T]) (*T, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	return Lookup(e.world.components, e.id, id)
}

// HasComponent reports whether e is alive and has a T component.
func HasComponent[T any](e Entity, id ComponentID[T]) bool {
	if !e.Alive() {
		return false
	}
	return hasComponent(e.world.components, e.id, id)
}
