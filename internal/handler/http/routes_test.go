// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-delta-sync/internal/service"
	"github.com/MKhiriev/go-delta-sync/models"
)

// newRoutedHandler wires a Handler whose feed service answers every call
// with an empty success, so route-level behaviour can be asserted in
// isolation.
func newRoutedHandler(t *testing.T) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{
		FeedService: &mockFeedService{
			changesFn: func(context.Context, string, int64) (models.ChangeListResponse, error) {
				return models.ChangeListResponse{Items: []models.ChangeListItem{}}, nil
			},
			latestVersionFn: func(context.Context, string) (models.VersionResponse, error) {
				return models.VersionResponse{}, nil
			},
			fetchEntitiesFn: func(context.Context, string, models.EntityBatchRequest) (models.EntityBatchResponse, error) {
				return models.EntityBatchResponse{}, nil
			},
			createEntityFn: func(context.Context, string, json.RawMessage) (models.UpsertEntityResponse, error) {
				return models.UpsertEntityResponse{}, nil
			},
			upsertEntityFn: func(context.Context, string, string, json.RawMessage) (models.UpsertEntityResponse, error) {
				return models.UpsertEntityResponse{}, nil
			},
			deleteEntityFn: func(context.Context, string, string) (models.UpsertEntityResponse, error) {
				return models.UpsertEntityResponse{}, nil
			},
		},
	})
}

func TestRoutes_CollectionEndpointsRequireToken(t *testing.T) {
	h := newRoutedHandler(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/collections/topics/changes?since=0"},
		{http.MethodGet, "/api/collections/topics/version"},
		{http.MethodPost, "/api/collections/topics/entities/batch"},
		{http.MethodPost, "/api/collections/topics/entities"},
		{http.MethodPut, "/api/collections/topics/entities/t1"},
		{http.MethodDelete, "/api/collections/topics/entities/t1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := doRequest(t, h, tt.method, tt.target, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_CollectionEndpointsReachableWithToken(t *testing.T) {
	h := newRoutedHandler(t)

	tests := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/collections/topics/changes?since=0", "", http.StatusOK},
		{http.MethodGet, "/api/collections/topics/version", "", http.StatusOK},
		{http.MethodPost, "/api/collections/topics/entities/batch", `{"ids":["a"]}`, http.StatusOK},
		{http.MethodPost, "/api/collections/topics/entities", `{"title":"Go"}`, http.StatusCreated},
		{http.MethodPut, "/api/collections/topics/entities/t1", `{"id":"t1"}`, http.StatusOK},
		{http.MethodDelete, "/api/collections/topics/entities/t1", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := doRequest(t, h, tt.method, tt.target, tt.body, authorized(nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	h := newRoutedHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_UnsupportedMethodHidesRoute(t *testing.T) {
	h := newRoutedHandler(t)

	// token issuance is POST-only; other methods report 404, not 405
	rec := doRequest(t, h, http.MethodGet, "/api/auth/token", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
