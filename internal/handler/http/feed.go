package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-delta-sync/internal/app"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/utils"
	"github.com/MKhiriev/go-delta-sync/models"
)

// getChanges serves GET /api/collections/{collection}/changes?since=N: the
// ordered change list with version greater than since, the collection's
// latest version, and a truncation flag when the page limit was hit.
func (h *Handler) getChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection := chi.URLParam(r, "collection")

	since, err := parseSinceParam(r.URL.Query().Get("since"))
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("invalid since parameter")
		http.Error(w, app.MsgInvalidSinceVersion, http.StatusBadRequest)
		return
	}

	changes, err := h.services.FeedService.Changes(ctx, collection, since)
	if err != nil {
		h.writeError(w, r, err, "error fetching change list")
		return
	}

	log.Debug().
		Str("collection", collection).
		Int64("since", since).
		Int("changes", changes.Length).
		Bool("truncated", changes.Truncated).
		Msg("change list served")

	utils.WriteJSON(w, changes, http.StatusOK)
}

// getCollectionVersion serves GET /api/collections/{collection}/version: the
// collection's current maximum change-list version. Sync clients use it as a
// cheap dirty check before fetching changes.
func (h *Handler) getCollectionVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collection := chi.URLParam(r, "collection")

	version, err := h.services.FeedService.LatestVersion(ctx, collection)
	if err != nil {
		h.writeError(w, r, err, "error fetching collection version")
		return
	}

	utils.WriteJSON(w, version, http.StatusOK)
}

// fetchEntityBatch serves POST /api/collections/{collection}/entities/batch:
// full payloads for the requested ids. Ids without a live entity are omitted
// from the response without error.
func (h *Handler) fetchEntityBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection := chi.URLParam(r, "collection")

	var req models.EntityBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("collection", collection).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	batch, err := h.services.FeedService.FetchEntities(ctx, collection, req)
	if err != nil {
		h.writeError(w, r, err, "error fetching entity batch")
		return
	}

	log.Debug().
		Str("collection", collection).
		Int("requested", len(req.IDs)).
		Int("found", batch.Length).
		Msg("entity batch served")

	utils.WriteJSON(w, batch, http.StatusOK)
}

// parseSinceParam parses the mandatory since query parameter. The zero
// cursor of a first sync arrives as the literal "0"; a missing or negative
// value is a client bug, not a first sync.
func parseSinceParam(raw string) (int64, error) {
	since, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if since < 0 {
		return 0, strconv.ErrRange
	}
	return since, nil
}
