package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-delta-sync/internal/app"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated sync client's id in the request context under
// [utils.ClientIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, forged, or otherwise invalid.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		// Store the authenticated client's id in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		clientID, err := token.GetClientID()
		if err != nil {
			log.Err(err).Msg("token carries no client id")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		r = r.WithContext(context.WithValue(ctx, utils.ClientIDCtxKey, clientID))
		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the raw token from an "Authorization"
// header value of the form "Bearer <token>". The scheme prefix is optional:
// a bare token is accepted too.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	switch len(parts) {
	case 1:
		if parts[0] == "Bearer" {
			return "", ErrEmptyToken
		}
		return parts[0], nil
	case 2:
		if parts[1] == "" {
			return "", ErrEmptyToken
		}
		return parts[1], nil
	default:
		return "", ErrInvalidAuthorizationHeader
	}
}
