package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedEngine indicates a storage engine other than
	// "postgres" or "sqlite".
	ErrUnsupportedEngine = errors.New("unsupported storage engine")
)
