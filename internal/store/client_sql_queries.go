// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// Replica table names, one per synchronized collection. The collection name
// reported by the feed matches the local table name exactly.
const (
	TableTopics    = "topics"
	TableAuthors   = "authors"
	TableResources = "resources"

	tableSyncCursors = "sync_cursors"
)

// buildUpsertEntityQuery builds an INSERT OR REPLACE statement for a single
// replica row. REPLACE removes any existing row with the same id before
// inserting, which reassigns the rowid and moves the entity to the end of
// the snapshot order. The updated_at column is left to its table default.
func buildUpsertEntityQuery(_ context.Context, table string, id string, payload []byte) (string, []any, error) {
	query, args, err := sq.Insert(table).
		Options("OR REPLACE").
		Columns("id", "payload").
		Values(id, string(payload)).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildDeleteEntitiesQuery builds a single DELETE covering every id in the
// batch. Absent ids simply do not match.
func buildDeleteEntitiesQuery(_ context.Context, table string, ids []string) (string, []any, error) {
	query, args, err := sq.Delete(table).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildSnapshotQuery builds the ordered payload scan over a replica table.
// Ordering by rowid yields insertion/update order.
func buildSnapshotQuery(_ context.Context, table string) (string, []any, error) {
	query, args, err := sq.Select("payload").
		From(table).
		OrderBy("rowid").
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildGetCursorQuery builds the version lookup for a single collection
// cursor.
func buildGetCursorQuery(_ context.Context, collection string) (string, []any, error) {
	query, args, err := sq.Select("version").
		From(tableSyncCursors).
		Where(sq.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildSetCursorQuery builds the cursor upsert. The ON CONFLICT clause keeps
// the write to a single statement so the cursor is rewritten exactly once
// per pass.
func buildSetCursorQuery(_ context.Context, collection string, version int64) (string, []any, error) {
	query, args, err := sq.Insert(tableSyncCursors).
		Columns("collection", "version").
		Values(collection, version).
		Suffix("ON CONFLICT(collection) DO UPDATE SET version = excluded.version").
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}
