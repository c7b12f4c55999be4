package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the feed server's route tree.
//
// Every request passes the trace-id, logging, and gzip middleware. Token
// issuance and the version probe are the only routes reachable without a
// bearer token; everything under /api/collections requires one. Feed writes
// additionally pass the payload integrity check.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/token", h.issueToken)
		r.Get("/api/version/", h.getServerVersion)
	})

	// change-feed routes, bearer token required
	router.Route("/api/collections/{collection}", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/changes", h.getChanges)
		r.Get("/version", h.getCollectionVersion)
		r.Post("/entities/batch", h.fetchEntityBatch)

		// feed producer writes carry a payload integrity hash
		r.Group(func(w chi.Router) {
			w.Use(h.payloadIntegrity)
			w.Post("/entities", h.createEntity)
			w.Put("/entities/{entityID}", h.upsertEntity)
		})
		r.Delete("/entities/{entityID}", h.deleteEntity)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
