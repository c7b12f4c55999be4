package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

const (
	// bumpCollectionVersion increments the collection's version counter and
	// returns the new value, creating the counter row on first use. Runs
	// inside the same transaction as the catalog and change-log writes so
	// every recorded change carries a unique, monotonically increasing
	// version.
	bumpCollectionVersion = `
		INSERT INTO collection_versions (collection, version)
		VALUES ($1, 1)
		ON CONFLICT (collection)
		DO UPDATE SET version = collection_versions.version + 1
		RETURNING version;`

	upsertCatalogEntity = `
		INSERT INTO catalog_entities (collection, entity_id, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, entity_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now();`

	deleteCatalogEntity = `
		DELETE FROM catalog_entities
		WHERE collection = $1 AND entity_id = $2;`

	// upsertChangeLogRecord keeps at most one change-log row per entity:
	// a new change overwrites the previous one, so the feed reports only
	// the latest state of every id.
	upsertChangeLogRecord = `
		INSERT INTO change_log (collection, entity_id, version, is_delete, changed_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (collection, entity_id)
		DO UPDATE SET version = EXCLUDED.version, is_delete = EXCLUDED.is_delete, changed_at = now();`
)

// buildSelectChangesQuery builds the incremental change-list scan: records
// newer than since, oldest first, capped at limit rows. Callers probe for
// truncation by asking for one row more than they intend to return.
func buildSelectChangesQuery(_ context.Context, collection string, since int64, limit int) (string, []any, error) {
	query, args, err := sq.Select("entity_id", "version", "is_delete").
		From("change_log").
		Where(sq.Eq{"collection": collection}).
		Where(sq.Gt{"version": since}).
		OrderBy("version ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildSelectLatestVersionQuery builds the version counter lookup for a
// collection.
func buildSelectLatestVersionQuery(_ context.Context, collection string) (string, []any, error) {
	query, args, err := sq.Select("version").
		From("collection_versions").
		Where(sq.Eq{"collection": collection}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildFetchEntitiesQuery builds the batched payload fetch for the given ids.
func buildFetchEntitiesQuery(_ context.Context, collection string, ids []string) (string, []any, error) {
	query, args, err := sq.Select("entity_id", "payload").
		From("catalog_entities").
		Where(sq.Eq{"collection": collection}).
		Where(sq.Eq{"entity_id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}
