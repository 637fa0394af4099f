package sparsecs

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DefaultMaxEntities is the default limit on live entities.
const DefaultMaxEntities = 1_000_000

// Config holds the tunables of a World. It can be written by hand or loaded
// from YAML:
//
//	max_entities: 100000
//	initial_capacity: 4096
//	max_system_signatures: 20
//	log_level: info
type Config struct {
	// MaxEntities caps the number of live entities. Ids range over
	// [0, MaxEntities).
	MaxEntities uint64 `yaml:"max_entities"`
	// InitialCapacity pre-sizes component stores and the entity registry.
	InitialCapacity int `yaml:"initial_capacity"`
	// MaxSystemSignatures caps how many signatures one system tracks,
	// including the one it was registered with.
	MaxSystemSignatures int `yaml:"max_system_signatures"`
	// LogLevel enables a zap logger at this level ("debug", "info", "warn",
	// "error"). Empty leaves the world silent unless WithLogger is used.
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the configuration used by NewWorld when no
// WithConfig option is given.
func DefaultConfig() Config {
	return Config{
		MaxEntities:         DefaultMaxEntities,
		InitialCapacity:     1024,
		MaxSystemSignatures: DefaultMaxSystemSignatures,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, eris.Wrapf(err, "failed to read config %s", path)
	}
	return ParseConfig(data)
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	if c.MaxEntities == 0 {
		return eris.Wrap(ErrInvalidConfig, "max_entities must be positive")
	}
	if c.InitialCapacity < 0 {
		return eris.Wrap(ErrInvalidConfig, "initial_capacity must not be negative")
	}
	if c.MaxSystemSignatures < 1 {
		return eris.Wrap(ErrInvalidConfig, "max_system_signatures must be at least 1")
	}
	if c.LogLevel != "" {
		if _, err := parseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}
