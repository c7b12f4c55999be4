// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delta-sync/internal/app"
	"github.com/MKhiriev/go-delta-sync/internal/service"
	"github.com/MKhiriev/go-delta-sync/internal/utils"
	"github.com/MKhiriev/go-delta-sync/models"
)

// runAuthMiddleware sends one request with the given Authorization header
// through the auth middleware and reports the recorded response plus the
// client id the downstream handler observed.
func runAuthMiddleware(t *testing.T, auth service.AuthService, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	h := newTestHandler(t, &service.Services{AuthService: auth})

	var gotClientID string
	var sawClientID bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClientID, sawClientID = utils.GetClientIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/collections/topics/changes?since=0", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec, gotClientID, sawClientID
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	rec, clientID, ok := runAuthMiddleware(t, acceptAnyToken(), "Bearer some-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok, "client id missing from downstream context")
	assert.Equal(t, "desktop", clientID)
}

func TestAuthMiddleware_BareTokenAccepted(t *testing.T) {
	rec, clientID, ok := runAuthMiddleware(t, acceptAnyToken(), "some-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, "desktop", clientID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, ok := runAuthMiddleware(t, acceptAnyToken(), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok, "handler must not run without a token")
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestAuthMiddleware_SchemeWithoutToken(t *testing.T) {
	rec, _, ok := runAuthMiddleware(t, acceptAnyToken(), "Bearer")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
	assert.Contains(t, rec.Body.String(), ErrEmptyToken.Error())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _, ok := runAuthMiddleware(t, acceptAnyToken(), "Bearer too many parts")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
	assert.Contains(t, rec.Body.String(), ErrInvalidAuthorizationHeader.Error())
}

func TestAuthMiddleware_TokenRejected(t *testing.T) {
	rejecting := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	rec, _, ok := runAuthMiddleware(t, rejecting, "Bearer expired-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
	assert.Contains(t, rec.Body.String(), app.MsgTokenIsExpiredOrInvalid)
}

func TestAuthMiddleware_TokenWithoutSubject(t *testing.T) {
	noSubject := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return tokenWithSubject("", tokenString), nil
		},
	}

	rec, _, ok := runAuthMiddleware(t, noSubject, "Bearer anonymous-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "bare token", header: "abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "scheme only", header: "Bearer", wantErr: ErrEmptyToken},
		{name: "too many parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
