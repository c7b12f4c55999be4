package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-delta-sync/internal/app"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/utils"
)

// createEntity serves POST /api/collections/{collection}/entities: it stores
// the payload under a server-assigned id and records the change in the feed.
// Used by feed producers and seeding tools, not by sync clients.
func (h *Handler) createEntity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection := chi.URLParam(r, "collection")

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("failed to read request body")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	result, err := h.services.FeedService.CreateEntity(ctx, collection, json.RawMessage(payload))
	if err != nil {
		h.writeError(w, r, err, "error creating entity")
		return
	}
	result.Collection = collection

	utils.WriteJSON(w, result, http.StatusCreated)
}

// upsertEntity serves PUT /api/collections/{collection}/entities/{entityID}:
// it creates or replaces the catalog entry and records the change in the
// feed. The assigned change-list version is returned to the producer.
func (h *Handler) upsertEntity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection := chi.URLParam(r, "collection")
	entityID := chi.URLParam(r, "entityID")
	if entityID == "" {
		log.Error().Str("collection", collection).Msg("empty entity id in upsert path")
		http.Error(w, app.MsgEmptyEntityID, http.StatusBadRequest)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("failed to read request body")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	result, err := h.services.FeedService.UpsertEntity(ctx, collection, entityID, json.RawMessage(payload))
	if err != nil {
		h.writeError(w, r, err, "error upserting entity")
		return
	}
	result.Collection = collection

	log.Debug().
		Str("collection", collection).
		Str("entity_id", entityID).
		Int64("version", result.Version).
		Msg("entity upserted")

	utils.WriteJSON(w, result, http.StatusOK)
}

// deleteEntity serves DELETE /api/collections/{collection}/entities/{entityID}:
// it removes the catalog entry and records a tombstone in the feed, so sync
// clients drop the entity from their replicas on the next pass.
func (h *Handler) deleteEntity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection := chi.URLParam(r, "collection")
	entityID := chi.URLParam(r, "entityID")
	if entityID == "" {
		log.Error().Str("collection", collection).Msg("empty entity id in delete path")
		http.Error(w, app.MsgEmptyEntityID, http.StatusBadRequest)
		return
	}

	result, err := h.services.FeedService.DeleteEntity(ctx, collection, entityID)
	if err != nil {
		h.writeError(w, r, err, "error deleting entity")
		return
	}
	result.Collection = collection

	log.Debug().
		Str("collection", collection).
		Str("entity_id", entityID).
		Int64("version", result.Version).
		Msg("entity deleted")

	utils.WriteJSON(w, result, http.StatusOK)
}
