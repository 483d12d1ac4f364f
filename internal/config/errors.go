package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an unknown backend name, or a backend missing its DSN,
	// path or address).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates invalid vault settings (for
	// example, an unknown recovery policy name).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
)
