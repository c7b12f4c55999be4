package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
)

// Storages groups the feed server's persistence repositories.
type Storages struct {
	// FeedRepository serves the change feed: catalog entries, change-log
	// records, and per-collection version counters.
	FeedRepository FeedRepository
}

// NewStorages initialises the server storage layer: it connects to the
// PostgreSQL database named in cfg.DB.DSN, applies pending feed-table
// migrations, and constructs the feed repository on top.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigrateServer(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		FeedRepository: NewFeedRepository(db, logger),
	}, nil
}
