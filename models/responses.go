package models

import "encoding/json"

// ChangeListResponse is the wire form of one change-feed page. The client
// uses it to decide which ids to fetch, which to delete, and how far the
// persisted cursor may advance.
type ChangeListResponse struct {
	// Items is the ordered list of mutations with version > the requested
	// "since" value, ascending, each id at most once.
	Items []ChangeListItem `json:"items"`

	// LatestVersion is the collection's maximum version at response time.
	LatestVersion int64 `json:"latest_version"`

	// Truncated reports that Items was cut by the server's page limit and
	// does not cover the range up to LatestVersion.
	Truncated bool `json:"truncated"`

	// Length is the total number of entries in Items. Provided for
	// convenience so the client can validate the response without
	// iterating the slice.
	Length int `json:"length"`
}

// VersionResponse is the wire form of a bare latest-version probe.
type VersionResponse struct {
	// Collection is the collection the version belongs to.
	Collection string `json:"collection"`

	// Version is the collection's current maximum change-list version.
	Version int64 `json:"version"`
}

// EntityBatchResponse carries the full payloads answering an
// [EntityBatchRequest]. Entities are raw JSON documents; the requesting
// client decodes them into its concrete entity type.
type EntityBatchResponse struct {
	// Entities holds one JSON document per found id. Ids missing from the
	// remote collection are omitted without error.
	Entities []json.RawMessage `json:"entities"`

	// Length is the total number of entries in Entities.
	Length int `json:"length"`
}

// UpsertEntityResponse reports the change-list version assigned to an
// accepted admin upsert or delete.
type UpsertEntityResponse struct {
	// Collection is the mutated collection.
	Collection string `json:"collection"`

	// EntityID is the mutated entity id.
	EntityID string `json:"entity_id"`

	// Version is the new change-list version of the mutation.
	Version int64 `json:"version"`
}
