// SPDX-License-Identifier: Apache-2.0

package config

// applyDefaults fills in any field that is still unset after all sources
// have been merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Storage.DB.Engine == "" {
		cfg.Storage.DB.Engine = DefaultEngine
	}
	if cfg.App.CookieSignKey == "" {
		cfg.App.CookieSignKey = DefaultCookieSignKey
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Engine {
	case EnginePostgres, EngineSQLite:
	default:
		return ErrUnsupportedEngine
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
