package validators

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-delta-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldCollection targets the collection name of a feed request.
	FieldCollection = "collection"

	// FieldEntityID targets a single entity identifier.
	FieldEntityID = "entity_id"

	// FieldEntityIDs targets the id list of a batch fetch request.
	FieldEntityIDs = "entity_ids"

	// FieldLength targets the declared list length of a batch fetch request.
	FieldLength = "length"

	// FieldPayload targets the raw JSON payload of a catalog entry.
	FieldPayload = "payload"

	// FieldClientID targets the sync-client identifier of a token request.
	FieldClientID = "client_id"

	// FieldClientSecret targets the shared secret of a token request.
	FieldClientSecret = "client_secret"
)

type FeedRequestValidator struct {
}

func NewFeedRequestValidator() Validator {
	return &FeedRequestValidator{}
}

func (v *FeedRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TokenRequest:
		return v.validateTokenRequest(ctx, value, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(ctx, *value, fields...)

	case models.EntityBatchRequest:
		return v.validateEntityBatchRequest(ctx, value, fields...)
	case *models.EntityBatchRequest:
		return v.validateEntityBatchRequest(ctx, *value, fields...)

	case models.CatalogEntry:
		return v.validateCatalogEntry(ctx, value, fields...)
	case *models.CatalogEntry:
		return v.validateCatalogEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FeedRequestValidator) validateTokenRequest(_ context.Context, req models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID, FieldClientSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if strings.TrimSpace(req.ClientID) == "" {
				return ErrEmptyClientID
			}
		case FieldClientSecret:
			if req.ClientSecret == "" {
				return ErrEmptyClientSecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FeedRequestValidator) validateEntityBatchRequest(_ context.Context, req models.EntityBatchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntityIDs, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldEntityIDs:
			if len(req.IDs) == 0 {
				return ErrNoEntityIDs
			}
			for _, id := range req.IDs {
				if strings.TrimSpace(id) == "" {
					return ErrEmptyEntityID
				}
			}
		case FieldLength:
			if req.Length != 0 && req.Length != len(req.IDs) {
				return ErrBatchLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FeedRequestValidator) validateCatalogEntry(_ context.Context, entry models.CatalogEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCollection, FieldEntityID, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldCollection:
			if strings.TrimSpace(entry.Collection) == "" {
				return ErrEmptyCollection
			}
		case FieldEntityID:
			if strings.TrimSpace(entry.EntityID) == "" {
				return ErrEmptyEntityID
			}
		case FieldPayload:
			if !isJSONObject(entry.Payload) {
				return ErrInvalidPayload
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isJSONObject reports whether raw is a syntactically valid JSON object.
// Scalars and arrays are rejected: a catalog entry payload is always the
// entity document itself.
func isJSONObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	return json.Valid(raw)
}
