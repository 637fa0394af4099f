package sparsecs

import "go.uber.org/zap"

// WorldOption configures a World in NewWorld.
type WorldOption func(*World)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) WorldOption {
	return func(w *World) {
		w.cfg = cfg
	}
}

// WithLogger sets the logger. It takes precedence over Config.LogLevel.
func WithLogger(logger *zap.Logger) WorldOption {
	return func(w *World) {
		if logger != nil {
			w.log = logger
		}
	}
}

// WithEventBus publishes lifecycle events on an existing bus, e.g. one shared
// by several worlds.
func WithEventBus(bus *EventBus) WorldOption {
	return func(w *World) {
		if bus != nil {
			w.events = bus
		}
	}
}

// WithResources starts the world with an existing resource collection.
func WithResources(res *Resources) WorldOption {
	return func(w *World) {
		if res != nil {
			w.resources = res
		}
	}
}
