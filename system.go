package sparsecs

import (
	"errors"

	"github.com/rotisserie/eris"
)

// DefaultMaxSystemSignatures is the default number of signatures a system
// may track, its primary requirement included.
const DefaultMaxSystemSignatures = 20

// System is a unit of per-tick behaviour. Concrete systems embed SystemBase,
// which supplies the tracked entity sets and deferred deletion, and implement
// Update:
//
//	type MoveSystem struct {
//		sparsecs.SystemBase
//		pos sparsecs.ComponentID[Position]
//		vel sparsecs.ComponentID[Velocity]
//	}
//
//	func (s *MoveSystem) Update(dt float64) error {
//		for e := range s.Entities().All() {
//			...
//		}
//		return nil
//	}
type System interface {
	// Update runs one tick. Entities passed to MarkForDeletion during Update
	// are destroyed after it returns.
	Update(dt float64) error
	base() *SystemBase
}

// trackedSet pairs a requirement with the entities currently matching it.
type trackedSet struct {
	requirement Signature
	entities    *EntitySet
}

// SystemBase holds the membership state of a system. It is only usable once
// the system has been passed to RegisterSystem.
type SystemBase struct {
	sets       []trackedSet // sets[0] is the primary requirement
	pending    *EntitySet
	components *ComponentRegistry
	resources  *Resources
	registry   *systemRegistry
	destroy    func(EntityID) error
	maxSets    int
	name       string
}

func (b *SystemBase) base() *SystemBase { return b }

func (b *SystemBase) registered() bool {
	return b.registry != nil
}

// Entities returns the set of entities matching the primary requirement.
func (b *SystemBase) Entities() *EntitySet {
	if len(b.sets) == 0 {
		return nil
	}
	return b.sets[0].entities
}

// Requirement returns the primary signature the system was registered with.
func (b *SystemBase) Requirement() Signature {
	if len(b.sets) == 0 {
		return Signature{}
	}
	return b.sets[0].requirement
}

// Components returns the registry the system reads component values from.
func (b *SystemBase) Components() *ComponentRegistry {
	return b.components
}

// Resources returns the world-scoped singletons of the owning world.
func (b *SystemBase) Resources() *Resources {
	return b.resources
}

// Name is the type name of the concrete system, used in logs and errors.
func (b *SystemBase) Name() string {
	return b.name
}

// RegisterSystemSignature starts tracking an additional signature and returns
// the set of entities matching it. The set is filled with every existing
// entity that already matches. Once the system tracks maxSets signatures,
// further calls return ErrCapacityExceeded.
func (b *SystemBase) RegisterSystemSignature(sig Signature) (*EntitySet, error) {
	if !b.registered() {
		return nil, eris.Wrap(ErrInvalidHandle, "system is not registered")
	}
	if len(b.sets) >= b.maxSets {
		return nil, eris.Wrapf(ErrCapacityExceeded, "%s already tracks %d signatures", b.name, b.maxSets)
	}
	set := NewEntitySet()
	b.sets = append(b.sets, trackedSet{requirement: sig, entities: set})
	b.registry.backfill(sig, set)
	return set, nil
}

// MarkForDeletion queues e to be destroyed once the current Update returns.
// Marking the same entity twice destroys it once.
func (b *SystemBase) MarkForDeletion(e EntityID) {
	if b.pending == nil {
		b.pending = NewEntitySet()
	}
	b.pending.Insert(e)
}

// apply re-evaluates the membership of e in every tracked set.
func (b *SystemBase) apply(e EntityID, sig Signature) {
	for _, ts := range b.sets {
		if sig.Contains(ts.requirement) {
			ts.entities.Insert(e)
		} else {
			ts.entities.Remove(e)
		}
	}
}

// forget drops e from every tracked set and the pending set.
func (b *SystemBase) forget(e EntityID) {
	for _, ts := range b.sets {
		ts.entities.Remove(e)
	}
	if b.pending != nil {
		b.pending.Remove(e)
	}
}

// flush destroys every entity marked during the tick and empties the pending
// set. The ids are copied first because each destruction also removes the
// entity from the pending set.
func (b *SystemBase) flush() error {
	if b.pending == nil || b.pending.Len() == 0 {
		return nil
	}
	marked := b.pending.Slice()
	b.pending.Clear()
	var errs []error
	for _, e := range marked {
		if err := b.destroy(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *SystemBase) reset() {
	for _, ts := range b.sets {
		ts.entities.Clear()
	}
	if b.pending != nil {
		b.pending.Clear()
	}
}
