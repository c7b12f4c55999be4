package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-delta-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FeedRepository is the server-side persistence layer for the change feed.
// One implementation serves every registered collection; the collection name
// is passed explicitly to each call.
type FeedRepository interface {
	// Changes returns change-log records with version greater than since,
	// ordered by version ascending, at most limit records. The truncated
	// flag reports whether more matching records exist beyond the limit.
	Changes(ctx context.Context, collection string, since int64, limit int) (items []models.ChangeListItem, truncated bool, err error)

	// LatestVersion returns the current version counter of the collection.
	// A collection that has never been written reports version 0.
	LatestVersion(ctx context.Context, collection string) (int64, error)

	// FetchEntities returns the payloads of the requested ids, preserving
	// the order of ids. Ids with no live entity are silently omitted.
	FetchEntities(ctx context.Context, collection string, ids []string) ([]json.RawMessage, error)

	// UpsertEntity stores the payload under (collection, entityID), bumps
	// the collection version and records the change. Returns the version
	// assigned to the change.
	UpsertEntity(ctx context.Context, collection string, entityID string, payload json.RawMessage) (int64, error)

	// DeleteEntity removes the entity and records a deletion change with a
	// freshly bumped version. Returns [ErrEntityNotFound] if no live entity
	// exists under the id.
	DeleteEntity(ctx context.Context, collection string, entityID string) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
