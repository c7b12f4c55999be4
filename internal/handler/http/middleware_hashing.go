package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-delta-sync/internal/app"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/utils"
)

// payloadIntegrity verifies the HMAC-SHA256 digest that feed producers attach
// to write requests in the [utils.PayloadHashHeader] header. The digest is
// computed over the raw request body with the shared hash key.
//
// Requests without the header pass through unchecked: the integrity check is
// opt-in and only enforced when the producer signs its payloads. A present
// but mismatching digest is rejected with HTTP 400 before the handler runs.
func (h *Handler) payloadIntegrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		requestHash := r.Header.Get(utils.PayloadHashHeader)
		if requestHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body for integrity check")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body for the downstream handler
		r.Body = io.NopCloser(bytes.NewReader(body))

		expected, err := hex.DecodeString(requestHash)
		if err != nil {
			log.Err(err).Str("payload_hash", requestHash).Msg("payload hash header is not hex")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		if !hmac.Equal(utils.Hash(body), expected) {
			log.Error().
				Str("payload_hash", requestHash).
				Msg("payload hash does not match request body")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		log.Debug().Msg("payload integrity check passed")
		next.ServeHTTP(w, r)
	})
}
