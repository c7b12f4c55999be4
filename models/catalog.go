// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// CatalogEntry is the server-side storage record of one entity in one
// collection. The payload is kept as raw JSON so that the feed server
// stays agnostic of the entity schema: clients own the decoding.
type CatalogEntry struct {
	// Collection is the collection the entity belongs to.
	Collection string `json:"collection"`

	// EntityID is the stable entity identifier within the collection.
	EntityID string `json:"entity_id"`

	// Payload is the entity body as it was uploaded, verbatim.
	Payload json.RawMessage `json:"payload"`

	// UpdatedAt is the time of the last upsert.
	UpdatedAt time.Time `json:"updated_at"`
}

// ChangeLogRecord is the server-side persisted form of a change-list item:
// the most recent state of one entity id within one collection. A new
// upsert or delete of the same id overwrites the previous record with a
// higher version, which is what guarantees "each id at most once" per feed
// response.
type ChangeLogRecord struct {
	// Collection is the collection the change belongs to.
	Collection string `json:"collection"`

	// EntityID is the mutated entity id.
	EntityID string `json:"entity_id"`

	// Version is the collection version assigned to this mutation.
	Version int64 `json:"version"`

	// Deleted marks a tombstone.
	Deleted bool `json:"is_delete"`

	// ChangedAt is the time the mutation was recorded.
	ChangedAt time.Time `json:"changed_at"`
}
