package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/models"
)

// collectionRepository is the SQLite-backed implementation of [LocalStore]
// for a single replica table. Entities are stored as JSON payloads keyed by
// their entity id; snapshot order is the implicit rowid order, which INSERT
// OR REPLACE refreshes on every upsert.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (collection, entity ids, batch sizes).
type collectionRepository[E models.Entity] struct {
	*DB
	table  string
	logger *logger.Logger
}

// NewCollectionRepository constructs a [LocalStore] for one replica table.
// The table name must be one of the replica table constants; it is baked
// into every query the repository builds.
func NewCollectionRepository[E models.Entity](db *DB, table string, logger *logger.Logger) LocalStore[E] {
	return &collectionRepository[E]{
		DB:     db,
		table:  table,
		logger: logger,
	}
}

// UpsertAll writes the given entities into the replica table in the order
// provided, inside a single transaction. An entity whose id already exists
// replaces the old row and moves to the end of the snapshot order.
func (r *collectionRepository[E]) UpsertAll(ctx context.Context, entities []E) error {
	log := logger.FromContext(ctx)

	if len(entities) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.UpsertAll").
			Str("collection", r.table).
			Int("count", len(entities)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, entity := range entities {
		payload, marshalErr := json.Marshal(entity)
		if marshalErr != nil {
			log.Err(marshalErr).
				Str("func", "collectionRepository.UpsertAll").
				Str("collection", r.table).
				Str("entity_id", entity.EntityID()).
				Msg("failed to encode entity payload")
			return fmt.Errorf("%w: %w", ErrEncodingPayload, marshalErr)
		}

		query, args, buildErr := buildUpsertEntityQuery(ctx, r.table, entity.EntityID(), payload)
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "collectionRepository.UpsertAll").
				Str("collection", r.table).
				Msg("failed to create query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "collectionRepository.UpsertAll").
				Str("collection", r.table).
				Int("iteration", idx+1).
				Int("total", len(entities)).
				Str("entity_id", entity.EntityID()).
				Msg("failed to execute upsert")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "collectionRepository.UpsertAll").
			Str("collection", r.table).
			Int("count", len(entities)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// DeleteAll removes the rows with the given ids in a single statement.
// Ids with no matching row are skipped without error.
func (r *collectionRepository[E]) DeleteAll(ctx context.Context, ids []string) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildDeleteEntitiesQuery(ctx, r.table, ids)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.DeleteAll").
			Str("collection", r.table).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "collectionRepository.DeleteAll").
			Str("collection", r.table).
			Int("count", len(ids)).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}

// Snapshot returns every stored entity in insertion/update order.
func (r *collectionRepository[E]) Snapshot(ctx context.Context) ([]E, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSnapshotQuery(ctx, r.table)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.Snapshot").
			Str("collection", r.table).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.Snapshot").
			Str("collection", r.table).
			Msg("failed to execute snapshot query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]E, 0, 50)

	for rows.Next() {
		var payload string
		if scanErr := rows.Scan(&payload); scanErr != nil {
			log.Err(scanErr).
				Str("func", "collectionRepository.Snapshot").
				Str("collection", r.table).
				Msg("failed to scan payload row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		var entity E
		if decodeErr := json.Unmarshal([]byte(payload), &entity); decodeErr != nil {
			log.Err(decodeErr).
				Str("func", "collectionRepository.Snapshot").
				Str("collection", r.table).
				Msg("failed to decode entity payload")
			return nil, fmt.Errorf("%w: %w", ErrDecodingPayload, decodeErr)
		}

		entities = append(entities, entity)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "collectionRepository.Snapshot").
			Str("collection", r.table).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entities, nil
}
