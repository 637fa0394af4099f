package sparsecs

import "github.com/rotisserie/eris"

var (
	// ErrCapacityExceeded is returned when the entity limit or the component
	// type limit has been reached. The failed call has no effect.
	ErrCapacityExceeded = eris.New("capacity exceeded")
	// ErrUnknownComponentType is returned when an id does not refer to a
	// component type registered in this world.
	ErrUnknownComponentType = eris.New("unknown component type")
	// ErrComponentNotFound is returned when an entity lacks the requested
	// component.
	ErrComponentNotFound = eris.New("component not found")
	// ErrEntityNotFound is returned for operations on an entity that is not
	// alive.
	ErrEntityNotFound = eris.New("entity not found")
	// ErrDuplicateRegistration is returned when a system instance is
	// registered twice.
	ErrDuplicateRegistration = eris.New("duplicate registration")
	// ErrInvalidHandle is the panic value for component or system handles
	// outside the registered range. Handles only come from the registries,
	// so this always indicates a programming error.
	ErrInvalidHandle = eris.New("invalid handle")
	// ErrResourceNotFound is returned by GetResource when no resource of the
	// requested type is stored.
	ErrResourceNotFound = eris.New("resource not found")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = eris.New("invalid config")
)
