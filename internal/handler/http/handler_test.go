// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/service"
	"github.com/MKhiriev/go-delta-sync/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockFeedService implements service.FeedService for unit tests.
// Each method field can be overridden per test case.
type mockFeedService struct {
	changesFn       func(ctx context.Context, collection string, since int64) (models.ChangeListResponse, error)
	latestVersionFn func(ctx context.Context, collection string) (models.VersionResponse, error)
	fetchEntitiesFn func(ctx context.Context, collection string, req models.EntityBatchRequest) (models.EntityBatchResponse, error)
	createEntityFn  func(ctx context.Context, collection string, payload json.RawMessage) (models.UpsertEntityResponse, error)
	upsertEntityFn  func(ctx context.Context, collection string, entityID string, payload json.RawMessage) (models.UpsertEntityResponse, error)
	deleteEntityFn  func(ctx context.Context, collection string, entityID string) (models.UpsertEntityResponse, error)
}

func (m *mockFeedService) Changes(ctx context.Context, collection string, since int64) (models.ChangeListResponse, error) {
	return m.changesFn(ctx, collection, since)
}

func (m *mockFeedService) LatestVersion(ctx context.Context, collection string) (models.VersionResponse, error) {
	return m.latestVersionFn(ctx, collection)
}

func (m *mockFeedService) FetchEntities(ctx context.Context, collection string, req models.EntityBatchRequest) (models.EntityBatchResponse, error) {
	return m.fetchEntitiesFn(ctx, collection, req)
}

func (m *mockFeedService) CreateEntity(ctx context.Context, collection string, payload json.RawMessage) (models.UpsertEntityResponse, error) {
	return m.createEntityFn(ctx, collection, payload)
}

func (m *mockFeedService) UpsertEntity(ctx context.Context, collection string, entityID string, payload json.RawMessage) (models.UpsertEntityResponse, error) {
	return m.upsertEntityFn(ctx, collection, entityID, payload)
}

func (m *mockFeedService) DeleteEntity(ctx context.Context, collection string, entityID string) (models.UpsertEntityResponse, error) {
	return m.deleteEntityFn(ctx, collection, entityID)
}

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	issueTokenFn func(ctx context.Context, req models.TokenRequest) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) IssueToken(ctx context.Context, req models.TokenRequest) (models.Token, error) {
	return m.issueTokenFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given mocks. Nil services are
// replaced with safe defaults.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = acceptAnyToken()
	}
	return NewHandler(svcs, logger.Nop())
}

// acceptAnyToken returns an AuthService mock that treats every bearer token
// as the sync client "desktop".
func acceptAnyToken() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return tokenWithSubject("desktop", tokenString), nil
		},
	}
}

// tokenWithSubject builds a models.Token whose subject claim is set, so that
// GetClientID succeeds without a real JWT round trip.
func tokenWithSubject(subject, signed string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
		SignedString:     signed,
	}
}

// doRequest runs one request through the full route tree and returns the
// recorded response.
func doRequest(t *testing.T, h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// authorized adds a bearer token accepted by acceptAnyToken.
func authorized(headers map[string]string) map[string]string {
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Authorization"] = "Bearer test-token"
	return headers
}

// decodeResponse decodes the recorded JSON body into out.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
