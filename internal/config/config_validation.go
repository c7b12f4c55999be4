// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// Cursor backend names accepted by [ClientStorage.CursorBackend].
const (
	CursorBackendSQLite = "sqlite"
	CursorBackendFile   = "file"
	CursorBackendRedis  = "redis"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Server-side requirements are intentionally loose here: the server package
// decides which transports to start from the addresses present, and the
// service layer applies its own defaults for paging and token parameters.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	for _, pair := range cfg.App.SyncClients {
		if !strings.Contains(pair, ":") {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.CursorBackend {
	case "", CursorBackendSQLite:
	case CursorBackendFile:
		if cfg.Storage.CursorPath == "" {
			return ErrInvalidCursorConfigs
		}
	case CursorBackendRedis:
		if cfg.Storage.Redis.Address == "" {
			return ErrInvalidCursorConfigs
		}
	default:
		return ErrInvalidCursorConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
