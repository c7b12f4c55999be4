package http

import (
	"net/http"
)

// getServerVersion serves GET /api/version/: the feed server's build version
// as plain text. Reachable without a token so clients can probe compatibility
// before authenticating.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
