package sparsecs

import (
	"iter"
	"math/bits"

	"github.com/rotisserie/eris"
)

// entityRegistry hands out entity ids. Destroyed ids are queued and reused
// oldest first; fresh ids are only minted when the queue is empty.
type entityRegistry struct {
	free  fifo[EntityID]
	live  []uint64 // liveness bitset indexed by id
	next  uint64   // ids below next have been handed out at least once
	limit uint64
}

func newEntityRegistry(limit uint64, capacity int) *entityRegistry {
	return &entityRegistry{
		live:  make([]uint64, 0, (capacity+63)/64),
		limit: limit,
	}
}

func (r *entityRegistry) create() (EntityID, error) {
	if id, ok := r.free.pop(); ok {
		r.markLive(id)
		return id, nil
	}
	if r.next >= r.limit {
		return 0, eris.Wrapf(ErrCapacityExceeded, "entity limit %d reached", r.limit)
	}
	id := EntityID(r.next)
	r.next++
	r.markLive(id)
	return id, nil
}

// destroy queues id for reuse. Destroying an id that is not alive is rejected
// so an id can never be queued twice.
func (r *entityRegistry) destroy(id EntityID) error {
	if !r.alive(id) {
		return eris.Wrapf(ErrEntityNotFound, "entity %d", id)
	}
	r.live[uint64(id)>>6] &^= uint64(1) << (uint64(id) & 63)
	r.free.push(id)
	return nil
}

func (r *entityRegistry) alive(id EntityID) bool {
	w := uint64(id) >> 6
	if w >= uint64(len(r.live)) {
		return false
	}
	return r.live[w]&(uint64(1)<<(uint64(id)&63)) != 0
}

// count is the number of live entities: everything ever minted minus what is
// waiting in the recycle queue.
func (r *entityRegistry) count() uint64 {
	return r.next - uint64(r.free.len())
}

// all iterates the live ids in ascending order.
func (r *entityRegistry) all() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for w, word := range r.live {
			for word != 0 {
				b := bits.TrailingZeros64(word)
				if !yield(EntityID(uint64(w)<<6 | uint64(b))) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// reset returns every id to the recycle queue in ascending order.
func (r *entityRegistry) reset() {
	r.free.clear()
	clear(r.live)
	for id := range r.next {
		r.free.push(EntityID(id))
	}
}

func (r *entityRegistry) markLive(id EntityID) {
	w := int(uint64(id) >> 6)
	if w >= len(r.live) {
		r.live = grow(r.live, w+1)
	}
	r.live[w] |= uint64(1) << (uint64(id) & 63)
}
