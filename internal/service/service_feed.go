package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/store"
	"github.com/MKhiriev/go-delta-sync/internal/utils"
	"github.com/MKhiriev/go-delta-sync/models"
)

// DefaultPageLimit caps a single change-list response when no limit is
// configured. Sync clients follow truncated responses with further pages, so
// the value trades response size against round trips, not completeness.
const DefaultPageLimit = 500

type feedService struct {
	feedRepository store.FeedRepository

	// collections is the registry of collection names this server serves.
	// Requests for anything else fail with store.ErrUnknownCollection.
	collections map[string]struct{}
	pageLimit   int

	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

// NewFeedService builds the [FeedService] over feedRepository, serving the
// collections named in cfg. A non-positive cfg.PageLimit falls back to
// [DefaultPageLimit].
func NewFeedService(feedRepository store.FeedRepository, cfg config.App, logger *logger.Logger) FeedService {
	limit := cfg.PageLimit
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	collections := make(map[string]struct{}, len(cfg.Collections))
	for _, name := range cfg.Collections {
		collections[name] = struct{}{}
	}

	return &feedService{
		feedRepository: feedRepository,
		collections:    collections,
		pageLimit:      limit,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Changes implements [FeedService]. The latest version is read before the
// change list so that it can never exceed a version the list is missing; if
// concurrent writes land between the two reads the list may carry higher
// versions, and the reported latest version is raised to match.
func (f *feedService) Changes(ctx context.Context, collection string, since int64) (models.ChangeListResponse, error) {
	if err := f.checkCollection(collection); err != nil {
		return models.ChangeListResponse{}, err
	}

	latest, err := f.feedRepository.LatestVersion(ctx, collection)
	if err != nil {
		return models.ChangeListResponse{}, fmt.Errorf("latest version lookup: %w", err)
	}

	items, truncated, err := f.feedRepository.Changes(ctx, collection, since, f.pageLimit)
	if err != nil {
		return models.ChangeListResponse{}, fmt.Errorf("change list lookup: %w", err)
	}

	response := models.ChangeListResponse{
		Items:         items,
		LatestVersion: latest,
		Truncated:     truncated,
		Length:        len(items),
	}
	if maxVersion := (models.ChangeList{Items: items}).MaxVersion(); maxVersion > response.LatestVersion {
		response.LatestVersion = maxVersion
	}

	return response, nil
}

// LatestVersion implements [FeedService].
func (f *feedService) LatestVersion(ctx context.Context, collection string) (models.VersionResponse, error) {
	if err := f.checkCollection(collection); err != nil {
		return models.VersionResponse{}, err
	}

	latest, err := f.feedRepository.LatestVersion(ctx, collection)
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("latest version lookup: %w", err)
	}

	return models.VersionResponse{Collection: collection, Version: latest}, nil
}

// FetchEntities implements [FeedService].
func (f *feedService) FetchEntities(ctx context.Context, collection string, req models.EntityBatchRequest) (models.EntityBatchResponse, error) {
	if err := f.checkCollection(collection); err != nil {
		return models.EntityBatchResponse{}, err
	}

	entities, err := f.feedRepository.FetchEntities(ctx, collection, req.IDs)
	if err != nil {
		return models.EntityBatchResponse{}, fmt.Errorf("entity batch lookup: %w", err)
	}

	return models.EntityBatchResponse{Entities: entities, Length: len(entities)}, nil
}

// CreateEntity implements [FeedService]. The assigned id is a UUID, so feed
// producers can create entries without coordinating id ranges.
func (f *feedService) CreateEntity(ctx context.Context, collection string, payload json.RawMessage) (models.UpsertEntityResponse, error) {
	if err := f.checkCollection(collection); err != nil {
		return models.UpsertEntityResponse{}, err
	}

	entityID := f.uuid.Generate()
	version, err := f.feedRepository.UpsertEntity(ctx, collection, entityID, payload)
	if err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("create entity: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("collection", collection).
		Str("entity_id", entityID).
		Int64("version", version).
		Msg("entity created")

	return models.UpsertEntityResponse{EntityID: entityID, Version: version}, nil
}

// UpsertEntity implements [FeedService].
func (f *feedService) UpsertEntity(ctx context.Context, collection string, entityID string, payload json.RawMessage) (models.UpsertEntityResponse, error) {
	if err := f.checkCollection(collection); err != nil {
		return models.UpsertEntityResponse{}, err
	}

	version, err := f.feedRepository.UpsertEntity(ctx, collection, entityID, payload)
	if err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("upsert entity: %w", err)
	}

	return models.UpsertEntityResponse{EntityID: entityID, Version: version}, nil
}

// DeleteEntity implements [FeedService].
func (f *feedService) DeleteEntity(ctx context.Context, collection string, entityID string) (models.UpsertEntityResponse, error) {
	if err := f.checkCollection(collection); err != nil {
		return models.UpsertEntityResponse{}, err
	}

	version, err := f.feedRepository.DeleteEntity(ctx, collection, entityID)
	if err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("delete entity: %w", err)
	}

	return models.UpsertEntityResponse{EntityID: entityID, Version: version}, nil
}

func (f *feedService) checkCollection(collection string) error {
	if _, ok := f.collections[collection]; !ok {
		return fmt.Errorf("%w: %s", store.ErrUnknownCollection, collection)
	}
	return nil
}
