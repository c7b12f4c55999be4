package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
)

// CollectionSyncError reports the collection whose pass failed during a sync
// session. It wraps the underlying cause, so [errors.Is] and [errors.As] keep
// working across the coordinator boundary.
type CollectionSyncError struct {
	Collection string
	Err        error
}

func (e *CollectionSyncError) Error() string {
	return fmt.Sprintf("sync collection %s: %v", e.Collection, e.Err)
}

func (e *CollectionSyncError) Unwrap() error {
	return e.Err
}

type syncCoordinator struct {
	syncers []CollectionSyncer
	logger  *logger.Logger
}

// NewSyncCoordinator builds a [SyncCoordinator] over the given collection
// syncers. SyncAll runs them in the order they are passed here.
func NewSyncCoordinator(log *logger.Logger, syncers ...CollectionSyncer) SyncCoordinator {
	return &syncCoordinator{syncers: syncers, logger: log}
}

// SyncAll implements [SyncCoordinator]. Collections are synchronized one at a
// time; the first failing pass aborts the session and is returned wrapped in a
// [CollectionSyncError]. Cursors already advanced by earlier collections stay
// advanced, so the next session picks up exactly where this one stopped.
func (c *syncCoordinator) SyncAll(ctx context.Context) error {
	for _, syncer := range c.syncers {
		if err := syncer.Sync(ctx); err != nil {
			c.logger.Error().Err(err).
				Str("collection", syncer.Collection()).
				Msg("sync session aborted")
			return &CollectionSyncError{Collection: syncer.Collection(), Err: err}
		}
	}

	c.logger.Info().Int("collections", len(c.syncers)).Msg("sync session completed")
	return nil
}
