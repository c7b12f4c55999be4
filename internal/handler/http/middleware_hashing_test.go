// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delta-sync/internal/app"
	"github.com/MKhiriev/go-delta-sync/internal/service"
	"github.com/MKhiriev/go-delta-sync/internal/utils"
)

// runIntegrityMiddleware sends one request through payloadIntegrity and
// reports the response plus the body the downstream handler received.
func runIntegrityMiddleware(t *testing.T, body []byte, hashHeader string) (*httptest.ResponseRecorder, []byte, bool) {
	t.Helper()

	utils.InitHasherPool("test-hash-key")

	h := newTestHandler(t, &service.Services{})

	var downstreamBody []byte
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		read, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		downstreamBody = read
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/collections/topics/entities", bytes.NewReader(body))
	if hashHeader != "" {
		req.Header.Set(utils.PayloadHashHeader, hashHeader)
	}

	rec := httptest.NewRecorder()
	h.payloadIntegrity(next).ServeHTTP(rec, req)
	return rec, downstreamBody, called
}

func TestPayloadIntegrity_UnsignedRequestPassesThrough(t *testing.T) {
	body := []byte(`{"title":"Go"}`)

	rec, downstreamBody, called := runIntegrityMiddleware(t, body, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
	assert.Equal(t, body, downstreamBody)
}

func TestPayloadIntegrity_ValidSignature(t *testing.T) {
	utils.InitHasherPool("test-hash-key")
	body := []byte(`{"title":"Go"}`)
	signature := hex.EncodeToString(utils.Hash(body))

	rec, downstreamBody, called := runIntegrityMiddleware(t, body, signature)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
	// the body is restored for the handler after the check consumed it
	assert.Equal(t, body, downstreamBody)
}

func TestPayloadIntegrity_MismatchedSignature(t *testing.T) {
	utils.InitHasherPool("test-hash-key")
	signature := hex.EncodeToString(utils.Hash([]byte("different body")))

	rec, _, called := runIntegrityMiddleware(t, []byte(`{"title":"Go"}`), signature)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "handler must not run on a failed integrity check")
	assert.Contains(t, rec.Body.String(), app.MsgIntegrityCheckFailed)
}

func TestPayloadIntegrity_NonHexHeader(t *testing.T) {
	rec, _, called := runIntegrityMiddleware(t, []byte(`{"title":"Go"}`), "zzzz-not-hex")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), app.MsgIntegrityCheckFailed)
}
