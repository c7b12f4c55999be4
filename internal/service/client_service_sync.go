package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-delta-sync/internal/adapter"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/store"
	"github.com/MKhiriev/go-delta-sync/models"
)

type collectionSyncer[E models.Entity] struct {
	collection string
	feed       adapter.ChangeFeed[E]
	local      store.LocalStore[E]
	cursors    store.CursorStore

	// mu serializes sync passes for this collection. The periodic job and a
	// manual trigger may both call Sync; passes must never interleave.
	mu sync.Mutex

	logger *logger.Logger
}

// NewCollectionSyncer builds the incremental synchronizer for one collection.
// feed is the typed remote change feed, local the replica table the changes
// are applied to, and cursors the persistent store the collection's version
// cursor lives in.
func NewCollectionSyncer[E models.Entity](collection string, feed adapter.ChangeFeed[E], local store.LocalStore[E], cursors store.CursorStore, log *logger.Logger) CollectionSyncer {
	return &collectionSyncer[E]{
		collection: collection,
		feed:       feed,
		local:      local,
		cursors:    cursors,
		logger:     log.WithCollection(collection),
	}
}

// Collection implements [CollectionSyncer].
func (s *collectionSyncer[E]) Collection() string {
	return s.collection
}

// Sync implements [CollectionSyncer]. One pass fetches every remote change
// with version greater than the persisted cursor, applies upserts and
// deletions to the local replica, and advances the cursor to the version the
// fetched list covers. When the feed truncates its response the pass applies
// the partial list, advances the cursor only to the highest version it
// actually observed, and immediately fetches the next page until the feed is
// exhausted. A pass that finds the replica already up to date rewrites the
// cursor with its current value and returns nil.
func (s *collectionSyncer[E]) Sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	baseVersion, err := s.cursors.Get(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("read cursor: %w", err)
	}

	latest, err := s.feed.LatestVersion(ctx)
	if err != nil {
		return fmt.Errorf("fetch latest version: %w", mapFeedError(err))
	}
	if latest == baseVersion {
		// Nothing new. The cursor write is deliberate: a pass over an
		// unchanged feed must converge to the same persisted state as the
		// pass before it.
		if err = s.cursors.Set(ctx, s.collection, baseVersion); err != nil {
			return fmt.Errorf("write cursor: %w", err)
		}
		s.logger.Debug().Int64("cursor", baseVersion).Msg("collection already up to date")
		return nil
	}

	for {
		list, err := s.feed.Changes(ctx, baseVersion)
		if err != nil {
			return fmt.Errorf("fetch change list: %w", mapFeedError(err))
		}

		targetVersion := list.LatestVersion
		if list.Truncated {
			// The list does not cover the feed up to its latest version, so
			// only the highest version actually delivered is safe to record.
			targetVersion = list.MaxVersion()
			if targetVersion <= baseVersion {
				s.logger.Warn().
					Int64("cursor", baseVersion).
					Int64("feed_latest", list.LatestVersion).
					Msg("truncated change list made no progress past cursor")
				return fmt.Errorf("%w: truncated at version %d", ErrTruncatedFeedStalled, baseVersion)
			}
		}
		if targetVersion < baseVersion {
			// The cursor never regresses, even when the feed reports an older
			// version than we have already recorded.
			s.logger.Warn().
				Int64("cursor", baseVersion).
				Int64("feed_latest", targetVersion).
				Msg("feed reports older version than cursor")
			targetVersion = baseVersion
		}

		if err = s.apply(ctx, list.Items); err != nil {
			return err
		}

		// A cancellation between applying changes and recording them must
		// leave the previous cursor in place; re-applying the same changes on
		// the next pass is harmless.
		if err = ctx.Err(); err != nil {
			return err
		}

		if err = s.cursors.Set(ctx, s.collection, targetVersion); err != nil {
			return fmt.Errorf("write cursor: %w", err)
		}

		if !list.Truncated {
			s.logger.Info().
				Int64("cursor", targetVersion).
				Int("changes", len(list.Items)).
				Msg("collection synchronized")
			return nil
		}

		s.logger.Debug().
			Int64("cursor", targetVersion).
			Int("changes", len(list.Items)).
			Msg("change list truncated, fetching next page")
		baseVersion = targetVersion
	}
}

// apply partitions items into updates and deletions and applies both to the
// local replica, updates first. An id that appears as both updated and deleted
// in the same list is treated as deleted only.
func (s *collectionSyncer[E]) apply(ctx context.Context, items []models.ChangeListItem) error {
	if len(items) == 0 {
		return nil
	}

	deleted := make(map[string]struct{})
	deletedIDs := make([]string, 0)
	for _, item := range items {
		if !item.Deleted {
			continue
		}
		if _, dup := deleted[item.ID]; dup {
			continue
		}
		deleted[item.ID] = struct{}{}
		deletedIDs = append(deletedIDs, item.ID)
	}

	updatedIDs := make([]string, 0, len(items)-len(deletedIDs))
	for _, item := range items {
		if item.Deleted {
			continue
		}
		if _, conflict := deleted[item.ID]; conflict {
			s.logger.Warn().
				Str("entity_id", item.ID).
				Int64("version", item.Version).
				Msg("change list marks id as both updated and deleted, delete wins")
			continue
		}
		updatedIDs = append(updatedIDs, item.ID)
	}

	if len(updatedIDs) > 0 {
		entities, err := s.feed.FetchEntities(ctx, updatedIDs)
		if err != nil {
			return fmt.Errorf("fetch entities: %w", mapFeedError(err))
		}
		// Ids deleted remotely between the change-list fetch and the batch
		// fetch are omitted from the response; their deletions arrive with
		// the next pass.
		if err = s.local.UpsertAll(ctx, entities); err != nil {
			return fmt.Errorf("apply updates: %w", err)
		}
	}

	if len(deletedIDs) > 0 {
		if err := s.local.DeleteAll(ctx, deletedIDs); err != nil {
			return fmt.Errorf("apply deletions: %w", err)
		}
	}

	return nil
}
