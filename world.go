package sparsecs

import (
	"slices"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// World is the controller of an ECS instance. It owns the entity, component
// and system registries and keeps them consistent: every component mutation
// recomputes the entity's signature and hands it to the system registry, and
// every destruction reaches all stores and systems before the id is released.
//
// A World is not safe for concurrent use. Several worlds can coexist; each
// assigns its own component ids.
type World struct {
	id         uuid.UUID
	cfg        Config
	log        *zap.Logger
	events     *EventBus
	entities   *entityRegistry
	components *ComponentRegistry
	systems    *systemRegistry
	resources  *Resources
}

// NewWorld creates a World configured by opts.
//
// Parameters:
//   - opts: WithConfig, WithLogger, WithEventBus, WithResources.
//
// Returns:
//   - The new World, or an error if the configuration is invalid or the
//     logger it asks for cannot be built.
func NewWorld(opts ...WorldOption) (*World, error) {
	w := &World{
		id:  uuid.New(),
		cfg: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.cfg.Validate(); err != nil {
		return nil, err
	}
	if w.log == nil {
		if w.cfg.LogLevel == "" {
			w.log = zap.NewNop()
		} else {
			logger, err := NewLogger(w.cfg.LogLevel)
			if err != nil {
				return nil, err
			}
			w.log = logger
		}
	}
	w.log = w.log.Named("sparsecs").With(zap.Stringer("world", w.id))
	if w.events == nil {
		w.events = NewEventBus()
	}
	w.entities = newEntityRegistry(w.cfg.MaxEntities, w.cfg.InitialCapacity)
	w.components = NewComponentRegistry(w.cfg.InitialCapacity)
	w.systems = newSystemRegistry()
	if w.resources == nil {
		w.resources = NewResources()
	}
	return w, nil
}

// ID returns the unique id of this world instance.
func (w *World) ID() uuid.UUID {
	return w.id
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Logger returns the world's logger.
func (w *World) Logger() *zap.Logger {
	return w.log
}

// Events returns the bus lifecycle events are published on.
func (w *World) Events() *EventBus {
	return w.events
}

// Components returns the component registry. Systems receive the same
// registry through SystemBase.Components.
func (w *World) Components() *ComponentRegistry {
	return w.components
}

// Resources returns the world-scoped singletons. ClearEntities leaves them in
// place.
func (w *World) Resources() *Resources {
	return w.resources
}

// CreateEntity allocates an entity with no components. The oldest destroyed
// id is reused first. When MaxEntities entities are alive it returns
// ErrCapacityExceeded.
func (w *World) CreateEntity() (Entity, error) {
	id, err := w.entities.create()
	if err != nil {
		w.log.Warn("entity limit reached", zap.Uint64("max_entities", w.cfg.MaxEntities))
		return Entity{}, err
	}
	w.log.Debug("entity created", zap.Uint64("entity", uint64(id)))
	if HasSubscribers[EntityCreated](w.events) {
		Publish(w.events, EntityCreated{World: w.id, Entity: id})
	}
	return Entity{id: id, world: w}, nil
}

// Entity returns a handle for a live entity id.
func (w *World) Entity(id EntityID) (Entity, error) {
	if !w.entities.alive(id) {
		return Entity{}, eris.Wrapf(ErrEntityNotFound, "entity %d", id)
	}
	return Entity{id: id, world: w}, nil
}

// IsAlive reports whether id belongs to a live entity.
func (w *World) IsAlive(id EntityID) bool {
	return w.entities.alive(id)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() uint64 {
	return w.entities.count()
}

// DestroyEntity removes every component of id, drops it from every system and
// releases the id for reuse, in that order. Destroying an entity that is not
// alive returns ErrEntityNotFound.
//
// Do not call it for an entity of a set that is being iterated; use
// SystemBase.MarkForDeletion from inside a system.
func (w *World) DestroyEntity(id EntityID) error {
	if !w.entities.alive(id) {
		return eris.Wrapf(ErrEntityNotFound, "entity %d", id)
	}
	w.components.EntityDestroyed(id)
	w.systems.EntityDestroyed(id)
	if err := w.entities.destroy(id); err != nil {
		return err
	}
	w.log.Debug("entity destroyed", zap.Uint64("entity", uint64(id)))
	if HasSubscribers[EntityDestroyed](w.events) {
		Publish(w.events, EntityDestroyed{World: w.id, Entity: id})
	}
	return nil
}

// ClearEntities destroys every entity at once, keeping registered component
// types and systems. Ids are handed out again from 0 upwards.
//
// One EntityDestroyed is published per destroyed entity, in ascending id
// order, once the world is empty.
func (w *World) ClearEntities() {
	n := w.entities.count()
	var destroyed []EntityID
	if HasSubscribers[EntityDestroyed](w.events) {
		destroyed = slices.Collect(w.entities.all())
	}
	w.components.clear()
	w.systems.reset()
	w.entities.reset()
	w.log.Debug("entities cleared", zap.Uint64("destroyed", n))
	for _, id := range destroyed {
		Publish(w.events, EntityDestroyed{World: w.id, Entity: id})
	}
}

// SystemCount returns the number of registered systems.
func (w *World) SystemCount() int {
	return len(w.systems.systems)
}

// UpdateAll ticks every system in registration order, each followed by its
// deferred deletions. It stops at the first system that fails.
func (w *World) UpdateAll(dt float64) error {
	for i := range w.systems.systems {
		if err := w.updateSystem(i, dt); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) updateSystem(i int, dt float64) error {
	s := w.systems.at(i)
	b := s.base()
	err := s.Update(dt)
	if ferr := b.flush(); ferr != nil {
		w.log.Error("deferred deletion failed", zap.String("system", b.name), zap.Error(ferr))
		if err == nil {
			err = ferr
		}
	}
	if err != nil {
		return eris.Wrapf(err, "system %s generated an error", b.name)
	}
	return nil
}

// RegisterComponentType registers T in w and returns its id. Registering T a
// second time returns the same id.
func RegisterComponentType[T any](w *World) (ComponentID[T], error) {
	before := w.components.Len()
	id, err := RegisterComponent[T](w.components)
	if err != nil {
		w.log.Warn("component type limit reached", zap.String("type", typeName[T]()))
		return id, err
	}
	if w.components.Len() > before {
		w.log.Info("component type registered",
			zap.String("type", typeName[T]()), zap.Uint16("component", id.Index()))
	}
	return id, nil
}

// ComponentTypeOf returns the id T was registered under in w.
func ComponentTypeOf[T any](w *World) (ComponentID[T], error) {
	return LookupComponentType[T](w.components)
}

// ComponentCount returns how many entities have a T component.
func ComponentCount[T any](w *World, id ComponentID[T]) (int, error) {
	return componentCount(w.components, id)
}

// RegisterSystem adds sys to w with requirement as its primary signature and
// returns a handle for GetSystem and UpdateSystem. The system immediately
// tracks every existing entity whose components satisfy requirement, inserted
// in ascending id order.
//
// Parameters:
//   - w: The world to register the system in.
//   - requirement: The components an entity must have to be tracked. The
//     empty signature tracks every entity that has had a component.
//   - sys: A pointer to a struct embedding SystemBase.
//
// Returns:
//   - A handle for GetSystem and UpdateSystem.
//   - ErrDuplicateRegistration if sys is already registered.
func RegisterSystem[S System](w *World, requirement Signature, sys S) (SystemID[S], error) {
	b := sys.base()
	if b.registered() {
		return SystemID[S]{}, eris.Wrapf(ErrDuplicateRegistration, "system %s", b.name)
	}
	set := NewEntitySet()
	*b = SystemBase{
		sets:       []trackedSet{{requirement: requirement, entities: set}},
		pending:    NewEntitySet(),
		components: w.components,
		resources:  w.resources,
		registry:   w.systems,
		destroy:    w.DestroyEntity,
		maxSets:    w.cfg.MaxSystemSignatures,
		name:       typeName[S](),
	}
	w.systems.backfill(requirement, set)
	idx := w.systems.add(sys)
	w.log.Info("system registered",
		zap.String("system", b.name), zap.Int("index", idx), zap.Stringer("requirement", requirement))
	return newSystemID[S](idx), nil
}

// GetSystem returns the system behind id. A handle outside the registered
// range, or one naming a different system type, panics with ErrInvalidHandle.
//
// Handles are not tagged with their world. A SystemID from another world is
// accepted when the system at its index has type S, and returns that system.
func GetSystem[S System](w *World, id SystemID[S]) S {
	s, ok := w.systems.at(id.Index()).(S)
	if !ok {
		panic(ErrInvalidHandle)
	}
	return s
}

// UpdateSystem runs one tick of the system behind id: its Update first, then
// the destruction of every entity it marked for deletion.
func UpdateSystem[S System](w *World, id SystemID[S], dt float64) error {
	GetSystem(w, id)
	return w.updateSystem(id.Index(), dt)
}
