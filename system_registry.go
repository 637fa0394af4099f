package sparsecs

import (
	"maps"
	"slices"
)

// systemRegistry owns the registered systems and the current signature of
// every entity that has had a component added.
//
// Every signature change re-evaluates every tracked set of every system, so
// a mutation costs O(systems x signatures) rather than using a reverse index
// from component type to interested systems.
type systemRegistry struct {
	systems    []System
	signatures map[EntityID]Signature
}

func newSystemRegistry() *systemRegistry {
	return &systemRegistry{
		signatures: make(map[EntityID]Signature),
	}
}

func (r *systemRegistry) add(s System) int {
	r.systems = append(r.systems, s)
	return len(r.systems) - 1
}

// at returns the system at index i, panicking on an index that was never
// handed out.
func (r *systemRegistry) at(i int) System {
	if i < 0 || i >= len(r.systems) {
		panic(ErrInvalidHandle)
	}
	return r.systems[i]
}

// signature returns the recorded composition of e; the zero Signature when e
// has never had a component.
func (r *systemRegistry) signature(e EntityID) Signature {
	return r.signatures[e]
}

// EntitySignatureChanged records sig as the composition of e and updates the
// membership of e in every tracked set.
func (r *systemRegistry) EntitySignatureChanged(e EntityID, sig Signature) {
	r.signatures[e] = sig
	for _, s := range r.systems {
		s.base().apply(e, sig)
	}
}

// EntityDestroyed removes e from every system and drops its signature.
func (r *systemRegistry) EntityDestroyed(e EntityID) {
	for _, s := range r.systems {
		s.base().forget(e)
	}
	delete(r.signatures, e)
}

// backfill inserts every entity whose recorded signature satisfies req, in
// ascending id order.
func (r *systemRegistry) backfill(req Signature, set *EntitySet) {
	for _, e := range slices.Sorted(maps.Keys(r.signatures)) {
		if r.signatures[e].Contains(req) {
			set.Insert(e)
		}
	}
}

func (r *systemRegistry) reset() {
	clear(r.signatures)
	for _, s := range r.systems {
		s.base().reset()
	}
}
