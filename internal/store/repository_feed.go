package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/models"
)

// feedRepository is the PostgreSQL-backed implementation of [FeedRepository].
// It maintains three tables per database: catalog_entities (live payloads),
// change_log (latest change per entity) and collection_versions (monotonic
// version counters).
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (collection, entity_id, version).
type feedRepository struct {
	*DB
	logger *logger.Logger
}

// NewFeedRepository constructs a [FeedRepository] backed by the provided
// database connection and logger.
func NewFeedRepository(db *DB, logger *logger.Logger) FeedRepository {
	return &feedRepository{
		DB:     db,
		logger: logger,
	}
}

// storageError wraps a driver failure with the given sentinel. When the
// connection's error classificator recognises the failure as transient
// (connection loss, deadlock, serialization rollback), the result is
// additionally tagged with [ErrRetryableStorage] so callers can decide to
// retry instead of failing the operation for good.
func (f *feedRepository) storageError(sentinel, err error) error {
	if f.DB.errorClassificator != nil && f.DB.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrRetryableStorage, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// Changes returns change-log records newer than since, ordered by version
// ascending, at most limit records. It queries one extra row beyond the
// limit; if that row exists the result is flagged truncated and trimmed.
func (f *feedRepository) Changes(ctx context.Context, collection string, since int64, limit int) ([]models.ChangeListItem, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectChangesQuery(ctx, collection, since, limit+1)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.Changes").
			Str("collection", collection).
			Msg("failed to create query")
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.Changes").
			Str("collection", collection).
			Int64("since", since).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute change list query")
		return nil, false, f.storageError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ChangeListItem, 0, limit+1)

	for rows.Next() {
		var item models.ChangeListItem

		if scanErr := rows.Scan(&item.ID, &item.Version, &item.Deleted); scanErr != nil {
			log.Err(scanErr).
				Str("func", "feedRepository.Changes").
				Str("collection", collection).
				Msg("failed to scan change list row")
			return nil, false, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "feedRepository.Changes").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, false, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	truncated := len(items) > limit
	if truncated {
		items = items[:limit]
	}

	return items, truncated, nil
}

// LatestVersion returns the collection's current version counter, or 0 for a
// collection that has never been written.
func (f *feedRepository) LatestVersion(ctx context.Context, collection string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLatestVersionQuery(ctx, collection)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.LatestVersion").
			Str("collection", collection).
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	scanErr := f.DB.QueryRowContext(ctx, query, args...).Scan(&version)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return 0, nil
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "feedRepository.LatestVersion").
			Str("collection", collection).
			Msg("failed to read collection version")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return version, nil
}

// FetchEntities returns the live payloads of the requested ids, preserving
// the order of ids. Ids with no live entity are omitted from the result.
func (f *feedRepository) FetchEntities(ctx context.Context, collection string, ids []string) ([]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []json.RawMessage{}, nil
	}

	query, args, err := buildFetchEntitiesQuery(ctx, collection, ids)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.FetchEntities").
			Str("collection", collection).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.FetchEntities").
			Str("collection", collection).
			Int("ids count", len(ids)).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute batch fetch query")
		return nil, f.storageError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	payloadByID := make(map[string]json.RawMessage, len(ids))

	for rows.Next() {
		var entityID string
		var payload []byte

		if scanErr := rows.Scan(&entityID, &payload); scanErr != nil {
			log.Err(scanErr).
				Str("func", "feedRepository.FetchEntities").
				Str("collection", collection).
				Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		payloadByID[entityID] = json.RawMessage(payload)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "feedRepository.FetchEntities").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	// Preserve request order; absent ids are skipped.
	payloads := make([]json.RawMessage, 0, len(payloadByID))
	for _, id := range ids {
		if payload, ok := payloadByID[id]; ok {
			payloads = append(payloads, payload)
		}
	}

	return payloads, nil
}

// UpsertEntity stores the payload, bumps the collection version and records
// the change, all inside a single transaction. Returns the version assigned
// to the change.
func (f *feedRepository) UpsertEntity(ctx context.Context, collection string, entityID string, payload json.RawMessage) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.UpsertEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Msg("failed to begin transaction")
		return 0, f.storageError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var version int64
	if scanErr := tx.QueryRowContext(ctx, bumpCollectionVersion, collection).Scan(&version); scanErr != nil {
		log.Err(scanErr).
			Str("func", "feedRepository.UpsertEntity").
			Str("collection", collection).
			Str("pg_code", postgresError(scanErr)).
			Msg("failed to bump collection version")
		return 0, f.storageError(ErrExecutingStatement, scanErr)
	}

	if _, execErr := tx.ExecContext(ctx, upsertCatalogEntity, collection, entityID, []byte(payload)); execErr != nil {
		log.Err(execErr).
			Str("func", "feedRepository.UpsertEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to upsert catalog entity")
		return 0, f.storageError(ErrExecutingStatement, execErr)
	}

	if _, execErr := tx.ExecContext(ctx, upsertChangeLogRecord, collection, entityID, version, false); execErr != nil {
		log.Err(execErr).
			Str("func", "feedRepository.UpsertEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Int64("version", version).
			Msg("failed to record change")
		return 0, f.storageError(ErrExecutingStatement, execErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "feedRepository.UpsertEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Msg("failed to commit transaction")
		return 0, f.storageError(ErrCommitingTransaction, commitErr)
	}

	return version, nil
}

// DeleteEntity removes the live payload and records a deletion change with a
// freshly bumped version, all inside a single transaction. Deleting an id
// with no live entity returns [ErrEntityNotFound] and records nothing.
func (f *feedRepository) DeleteEntity(ctx context.Context, collection string, entityID string) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.DeleteEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Msg("failed to begin transaction")
		return 0, f.storageError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, execErr := tx.ExecContext(ctx, deleteCatalogEntity, collection, entityID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "feedRepository.DeleteEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to delete catalog entity")
		return 0, f.storageError(ErrExecutingStatement, execErr)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.DeleteEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Msg("failed to get rows affected after delete")
		return 0, f.storageError(ErrExecutingStatement, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "feedRepository.DeleteEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Msg("no rows affected during delete: entity not found")
		return 0, ErrEntityNotFound
	}

	var version int64
	if scanErr := tx.QueryRowContext(ctx, bumpCollectionVersion, collection).Scan(&version); scanErr != nil {
		log.Err(scanErr).
			Str("func", "feedRepository.DeleteEntity").
			Str("collection", collection).
			Str("pg_code", postgresError(scanErr)).
			Msg("failed to bump collection version")
		return 0, f.storageError(ErrExecutingStatement, scanErr)
	}

	if _, execErr := tx.ExecContext(ctx, upsertChangeLogRecord, collection, entityID, version, true); execErr != nil {
		log.Err(execErr).
			Str("func", "feedRepository.DeleteEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Int64("version", version).
			Msg("failed to record deletion change")
		return 0, f.storageError(ErrExecutingStatement, execErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "feedRepository.DeleteEntity").
			Str("collection", collection).
			Str("entity_id", entityID).
			Msg("failed to commit transaction")
		return 0, f.storageError(ErrCommitingTransaction, commitErr)
	}

	return version, nil
}
