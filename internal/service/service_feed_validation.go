package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/internal/validators"
	"github.com/MKhiriev/go-delta-sync/models"
)

// FeedValidationService guards a [FeedService] with request validation, so
// malformed input is rejected before it reaches the repository. Read paths
// stay cheap: only batch and write requests carry enough structure to check.
type FeedValidationService struct {
	inner     FeedService
	validator validators.Validator
}

func NewFeedValidationService() FeedServiceWrapper {
	return &FeedValidationService{
		validator: validators.NewFeedRequestValidator(),
	}
}

func (v *FeedValidationService) Changes(ctx context.Context, collection string, since int64) (models.ChangeListResponse, error) {
	if since < 0 {
		return models.ChangeListResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrNegativeVersion)
	}

	return v.inner.Changes(ctx, collection, since)
}

func (v *FeedValidationService) LatestVersion(ctx context.Context, collection string) (models.VersionResponse, error) {
	return v.inner.LatestVersion(ctx, collection)
}

func (v *FeedValidationService) FetchEntities(ctx context.Context, collection string, req models.EntityBatchRequest) (models.EntityBatchResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EntityBatchResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.FetchEntities(ctx, collection, req)
}

func (v *FeedValidationService) CreateEntity(ctx context.Context, collection string, payload json.RawMessage) (models.UpsertEntityResponse, error) {
	entry := models.CatalogEntry{Collection: collection, EntityID: "pending", Payload: payload}
	if err := v.validator.Validate(ctx, entry, validators.FieldCollection, validators.FieldPayload); err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateEntity(ctx, collection, payload)
}

func (v *FeedValidationService) UpsertEntity(ctx context.Context, collection string, entityID string, payload json.RawMessage) (models.UpsertEntityResponse, error) {
	entry := models.CatalogEntry{Collection: collection, EntityID: entityID, Payload: payload}
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpsertEntity(ctx, collection, entityID, payload)
}

func (v *FeedValidationService) DeleteEntity(ctx context.Context, collection string, entityID string) (models.UpsertEntityResponse, error) {
	entry := models.CatalogEntry{Collection: collection, EntityID: entityID, Payload: json.RawMessage(`{}`)}
	if err := v.validator.Validate(ctx, entry, validators.FieldCollection, validators.FieldEntityID); err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteEntity(ctx, collection, entityID)
}

func (v *FeedValidationService) Wrap(wrapped FeedService) FeedService {
	v.inner = wrapped
	return v
}
