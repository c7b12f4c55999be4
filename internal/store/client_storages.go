package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/models"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer: one [LocalStore] per
// synchronized collection plus the shared [CursorStore].
type ClientStorages struct {
	// Topics is the local replica of the topics collection.
	Topics LocalStore[models.Topic]
	// Authors is the local replica of the authors collection.
	Authors LocalStore[models.Author]
	// Resources is the local replica of the resources collection.
	Resources LocalStore[models.Resource]
	// Cursors persists the per-collection version cursors between passes.
	Cursors CursorStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.MigrateClient].
//  3. Selects the cursor backend named by cfg.CursorBackend ("sqlite" when
//     empty) and constructs one replica repository per collection.
//
// Returns an error if the database connection cannot be established, if
// migration fails, or if the selected cursor backend cannot be initialised.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cursors, err := newCursorStore(cfg, db, logger)
	if err != nil {
		return nil, fmt.Errorf("cursor store init failed: %w", err)
	}

	return &ClientStorages{
		Topics:    NewCollectionRepository[models.Topic](db, TableTopics, logger),
		Authors:   NewCollectionRepository[models.Author](db, TableAuthors, logger),
		Resources: NewCollectionRepository[models.Resource](db, TableResources, logger),
		Cursors:   cursors,
	}, nil
}

// newCursorStore constructs the cursor backend selected in the configuration.
// Validation of backend-specific settings happens at config load; by the time
// this runs the combination is known to be complete.
func newCursorStore(cfg config.ClientStorage, db *DB, log *logger.Logger) (CursorStore, error) {
	switch cfg.CursorBackend {
	case "", config.CursorBackendSQLite:
		return NewSQLiteCursorStore(db, log), nil
	case config.CursorBackendFile:
		return NewFileCursorStore(cfg.CursorPath, log), nil
	case config.CursorBackendRedis:
		return NewRedisCursorStore(context.Background(), cfg.Redis, log)
	default:
		return nil, fmt.Errorf("unknown cursor backend %q", cfg.CursorBackend)
	}
}
