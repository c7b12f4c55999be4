// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeListItem describes one mutation of one entity as of a specific
// change-list version. Items are produced only by the change feed, are
// immutable, and arrive ordered by Version ascending with each entity id
// appearing at most once per response (only its most recent state since
// the requested base version).
type ChangeListItem struct {
	// ID is the stable identifier of the mutated entity.
	ID string `json:"id"`

	// Version is the change-list version at which this mutation became
	// visible. Strictly greater than the "since" version it was requested
	// with.
	Version int64 `json:"change_list_version"`

	// Deleted reports whether the entity was removed from the remote
	// collection. When false the item represents an add or an update.
	Deleted bool `json:"is_delete"`
}

// ChangeList is a single change-feed page: the ordered mutations since some
// base version together with the feed's current maximum version taken at
// the same instant.
type ChangeList struct {
	// Items holds the mutations ordered by Version ascending.
	Items []ChangeListItem

	// LatestVersion is the feed's maximum version for the collection at
	// response time. It is always >= the highest Version in Items.
	LatestVersion int64

	// Truncated reports that the response hit a page limit and Items does
	// not cover the whole range up to LatestVersion. Callers must not
	// advance their cursor past the highest Version actually present in
	// Items when this flag is set.
	Truncated bool
}

// MaxVersion returns the highest Version present in Items, or 0 for an
// empty list.
func (c ChangeList) MaxVersion() int64 {
	var max int64
	for _, item := range c.Items {
		if item.Version > max {
			max = item.Version
		}
	}
	return max
}
