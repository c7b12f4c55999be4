package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
)

// sqliteCursorStore is the default [CursorStore] backend. It keeps the
// per-collection version cursors in the sync_cursors table of the same
// SQLite database that holds the replica tables.
type sqliteCursorStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteCursorStore constructs a [CursorStore] backed by the sync_cursors
// table of the given database.
func NewSQLiteCursorStore(db *DB, logger *logger.Logger) CursorStore {
	return &sqliteCursorStore{
		DB:     db,
		logger: logger,
	}
}

// Get returns the persisted cursor for the collection. A collection without
// a stored cursor reports 0.
func (s *sqliteCursorStore) Get(ctx context.Context, collection string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCursorQuery(ctx, collection)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteCursorStore.Get").
			Str("collection", collection).
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	scanErr := s.DB.QueryRowContext(ctx, query, args...).Scan(&version)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return 0, nil
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "sqliteCursorStore.Get").
			Str("collection", collection).
			Msg("failed to read version cursor")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return version, nil
}

// Set stores the cursor for the collection, overwriting any previous value.
func (s *sqliteCursorStore) Set(ctx context.Context, collection string, version int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetCursorQuery(ctx, collection, version)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteCursorStore.Set").
			Str("collection", collection).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := s.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "sqliteCursorStore.Set").
			Str("collection", collection).
			Int64("version", version).
			Msg("failed to write version cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "sqliteCursorStore.Set").
			Str("collection", collection).
			Msg("failed to get rows affected after cursor write")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "sqliteCursorStore.Set").
			Str("collection", collection).
			Int64("version", version).
			Msg("no rows affected during cursor write")
		return ErrCursorNotPersisted
	}

	return nil
}
