package sparsecs

import "github.com/google/uuid"

// EntityCreated is published after an entity id has been allocated.
type EntityCreated struct {
	World  uuid.UUID
	Entity EntityID
}

// EntityDestroyed is published after an entity has been removed from every
// store and system and its id released, by DestroyEntity and once per entity
// by ClearEntities.
type EntityDestroyed struct {
	World  uuid.UUID
	Entity EntityID
}

// ComponentAdded is published after a component was stored and system
// membership updated. Overwriting an existing component publishes it too.
type ComponentAdded struct {
	World     uuid.UUID
	Entity    EntityID
	Component uint16 // ComponentID index
	Signature Signature
}

// ComponentRemoved is published after a component was removed and system
// membership updated. Destroying an entity publishes EntityDestroyed only.
type ComponentRemoved struct {
	World     uuid.UUID
	Entity    EntityID
	Component uint16
	Signature Signature
}
