package store

import (
	"context"

	"github.com/MKhiriev/go-delta-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStore is the client-side replica of a single collection.
//
// Implementations must preserve arrival order: an upsert of an id already
// present moves that id to the end of the snapshot order, exactly as if it
// had been deleted and re-inserted.
type LocalStore[E models.Entity] interface {
	// UpsertAll inserts or replaces the given entities one by one, in the
	// order provided. Atomic: either every entity is applied or none.
	UpsertAll(ctx context.Context, entities []E) error
	// DeleteAll removes the rows with the given ids. Ids that are not
	// present are skipped without error.
	DeleteAll(ctx context.Context, ids []string) error
	// Snapshot returns every stored entity in insertion/update order.
	Snapshot(ctx context.Context) ([]E, error)
}

// CursorStore persists the per-collection version cursor between
// synchronization passes. A collection that has never been synchronized
// reports version 0.
type CursorStore interface {
	Get(ctx context.Context, collection string) (int64, error)
	Set(ctx context.Context, collection string, version int64) error
}
