package service

import (
	"context"
	"time"
)

// CollectionSyncer defines the client-side contract for incrementally pulling
// one collection's remote changes into the local replica. Implementations own
// the collection's version cursor and serialize their own passes: concurrent
// Sync calls for the same collection never interleave.
type CollectionSyncer interface {
	// Collection returns the name of the collection this syncer is bound to.
	Collection() string

	// Sync runs one synchronization pass: it reads the persisted cursor,
	// fetches all remote changes with a higher version, applies upserts and
	// deletions to the local replica, and advances the cursor. A pass that
	// finds no changes still rewrites the cursor with its current value.
	// Returns an error if any fetch, apply, or cursor write fails; the cursor
	// is never advanced past changes that were not fully applied.
	Sync(ctx context.Context) error
}

// SyncCoordinator defines the contract for running a whole sync session over
// every registered collection.
type SyncCoordinator interface {
	// SyncAll runs each registered collection syncer once, in registration
	// order, and stops at the first failure. A failure is reported as a
	// [CollectionSyncError] naming the collection; already-synced collections
	// keep their advanced cursors.
	SyncAll(ctx context.Context) error
}

// ClientAuthService defines the client-side contract for obtaining feed-server
// credentials before the first sync session.
type ClientAuthService interface {
	// Authenticate exchanges the configured client id and secret for a bearer
	// token and installs it on the feed client. Returns an error if the
	// credentials are rejected or the server is unreachable.
	Authenticate(ctx context.Context) error
}

// ClientSyncJob defines the contract for a background worker that periodically
// runs a full sync session.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
