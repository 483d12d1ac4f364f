// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup: the backend must be known and
// carry the settings it needs, and the recovery policy must be one of the
// accepted names.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case "", BackendMemory:
		// memory needs nothing
	case BackendFile:
		if cfg.Storage.File.Path == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendRedis:
		if cfg.Storage.Redis.Addr == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	switch cfg.Vault.Recovery {
	case "", RecoveryFail, RecoveryRemove:
	default:
		return ErrInvalidVaultConfigs
	}

	return nil
}
