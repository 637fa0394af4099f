package sparsecs

import "reflect"

// MaxEventTypes is the number of distinct event types an EventBus accepts.
const MaxEventTypes = 64

// EventBus delivers events synchronously to the handlers subscribed to their
// type, in subscription order. A World publishes its lifecycle events
// (EntityCreated, EntityDestroyed, ComponentAdded, ComponentRemoved) on its
// bus; applications may publish their own event types on the same bus.
//
// Handlers run inside the call that raised the event. A handler must not
// create or destroy entities or change components of the world that
// published the event.
type EventBus struct {
	ids      map[reflect.Type]uint8
	handlers [MaxEventTypes][]any
	next     uint8
}

// NewEventBus returns an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{ids: make(map[reflect.Type]uint8)}
}

// Subscribe appends handler to the handlers for events of type T. It panics
// once more than MaxEventTypes distinct types have been subscribed to.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.typeID(reflect.TypeFor[T]())
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish calls every handler subscribed to T with event.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.ids[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// HasSubscribers reports whether at least one handler listens for T. The
// world uses it to skip building events nobody receives.
func HasSubscribers[T any](bus *EventBus) bool {
	id, ok := bus.ids[reflect.TypeFor[T]()]
	return ok && len(bus.handlers[id]) > 0
}

func (bus *EventBus) typeID(t reflect.Type) uint8 {
	if bus.ids == nil {
		bus.ids = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.ids[t]; ok {
		return id
	}
	if int(bus.next) >= MaxEventTypes {
		panic("sparsecs: too many event types")
	}
	id := bus.next
	bus.ids[t] = id
	bus.next++
	return id
}
