package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-delta-sync/models"
)

// FeedService is the server-side contract behind the change-feed API. It
// serves paged change lists, version probes, and batched entity reads, and
// lets feed producers write catalog entries.
type FeedService interface {
	// Changes returns collection changes with version greater than since, in
	// ascending version order, capped at the configured page limit, together
	// with the collection's latest version and a truncation flag.
	Changes(ctx context.Context, collection string, since int64) (models.ChangeListResponse, error)

	// LatestVersion returns the collection's current version counter.
	LatestVersion(ctx context.Context, collection string) (models.VersionResponse, error)

	// FetchEntities returns full entity payloads for req.IDs in request order.
	// Ids without a live catalog entry are omitted without error.
	FetchEntities(ctx context.Context, collection string, req models.EntityBatchRequest) (models.EntityBatchResponse, error)

	// CreateEntity stores payload under a freshly assigned entity id and logs
	// the change in the collection's feed. Returns the id and new version.
	CreateEntity(ctx context.Context, collection string, payload json.RawMessage) (models.UpsertEntityResponse, error)

	// UpsertEntity creates or replaces the catalog entry entityID and logs the
	// change in the collection's feed. Returns the new version.
	UpsertEntity(ctx context.Context, collection string, entityID string, payload json.RawMessage) (models.UpsertEntityResponse, error)

	// DeleteEntity removes the catalog entry entityID and logs a deletion in
	// the collection's feed. Returns store.ErrEntityNotFound (wrapped) if no
	// such entry exists.
	DeleteEntity(ctx context.Context, collection string, entityID string) (models.UpsertEntityResponse, error)
}

// AuthService is the server-side contract for sync-client authentication and
// JWT token lifecycle.
type AuthService interface {
	// IssueToken verifies the client id and secret against the configured
	// client registry and returns a signed JWT for the client.
	IssueToken(ctx context.Context, req models.TokenRequest) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes application metadata such as the build version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// FeedServiceWrapper defines middleware composition for FeedService.
// Implementations wrap an existing FeedService to add behavior such as
// logging or validating.
type FeedServiceWrapper interface {
	Wrap(FeedService) FeedService // returns a decorated FeedService applying additional behavior
}
