package sparsecs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestParseConfigDefaults$ . -count 1
func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("initial_capacity: 64\n"))
	require.NoError(t, err)
	want := DefaultConfig()
	want.InitialCapacity = 64
	assert.Equal(t, want, cfg)
}

// go test -run ^TestLoadConfig$ . -count 1
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	data := "max_entities: 500\nmax_system_signatures: 4\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), cfg.MaxEntities)
	assert.Equal(t, 4, cfg.MaxSystemSignatures)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DefaultConfig().InitialCapacity, cfg.InitialCapacity)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// go test -run ^TestConfigValidate$ . -count 1
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero max entities", func(c *Config) { c.MaxEntities = 0 }},
		{"negative capacity", func(c *Config) { c.InitialCapacity = -1 }},
		{"no signatures", func(c *Config) { c.MaxSystemSignatures = 0 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
	assert.NoError(t, DefaultConfig().Validate())

	_, err := ParseConfig([]byte("max_entities: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ParseConfig([]byte("max_entities: [\n"))
	assert.Error(t, err)
}

// go test -run ^TestNewLogger$ . -count 1
func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("chatty")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
