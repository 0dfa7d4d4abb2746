package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergesInPriorityOrder(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "first:1000"}},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "second:2000"},
			Storage: Storage{DB: DB{Engine: EngineSQLite, DSN: "file:test.db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value
	assert.Equal(t, "first:1000", cfg.Server.HTTPAddress)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/stockroom"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultEngine, cfg.Storage.DB.Engine)
	assert.Equal(t, DefaultCookieSignKey, cfg.App.CookieSignKey)
}

func TestBuild_MissingDSNFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_UnsupportedEngine(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{Engine: "oracle", DSN: "something"}},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrUnsupportedEngine)
}
