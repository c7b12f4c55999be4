// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the delta-sync feed server.
//
// The primary abstractions are [FeedClient], which decouples the sync engine
// from the underlying protocol, and the typed per-collection [ChangeFeed] view
// consumed by the synchronizer. The package currently ships an HTTP/REST
// implementation ([NewHTTPFeedClient]); a gRPC implementation is reserved for
// future use in grpc.go.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and from connection-level failures by mapTransportError, so
// that callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrNotFound] for 404, [ErrServerUnavailable] for a refused
// connection).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-delta-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/feed_client_mock.go -package=mock

// FeedClient defines transport-agnostic communication with the feed server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Entity payloads cross this interface as raw JSON; the typed [ChangeFeed]
// view built by [NewCollectionFeed] decodes them into concrete entity types.
type FeedClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful RequestToken.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// RequestToken exchanges the sync-client credentials for a bearer token.
	// On success it stores the token via SetToken and returns it. Returns an
	// error if the request fails or the server responds with a non-2xx status.
	RequestToken(ctx context.Context, req models.TokenRequest) (string, error)

	// ServerVersion fetches the feed server's build version string. It is the
	// only endpoint besides RequestToken that does not require a token.
	ServerVersion(ctx context.Context) (string, error)

	// Changes fetches the list of collection changes with version greater than
	// since, in ascending version order. The returned list carries the
	// server-side latest version observed no later than the list itself, and a
	// truncation flag when the server hit its page limit.
	Changes(ctx context.Context, collection string, since int64) (models.ChangeList, error)

	// LatestVersion fetches the current version counter of collection without
	// fetching any changes. Used by the synchronizer as a cheap dirty check.
	LatestVersion(ctx context.Context, collection string) (int64, error)

	// FetchEntities fetches full entity payloads for ids in a single batch.
	// The response preserves the request order; ids unknown to the server are
	// omitted without error.
	FetchEntities(ctx context.Context, collection string, ids []string) ([]json.RawMessage, error)

	// CreateEntity submits a new entity payload and lets the server assign its
	// identifier. Returns the assigned id and the new collection version.
	// Intended for feed producers and seeding tools, not the sync engine.
	CreateEntity(ctx context.Context, collection string, payload any) (models.UpsertEntityResponse, error)

	// UpsertEntity creates or replaces the entity identified by entityID.
	// A transport integrity hash covering the payload is attached to the
	// request when the client is configured with a hash key. Returns the new
	// collection version. Intended for feed producers and seeding tools.
	UpsertEntity(ctx context.Context, collection string, entityID string, payload any) (models.UpsertEntityResponse, error)

	// DeleteEntity marks the entity identified by entityID as deleted in the
	// change feed. Returns [ErrNotFound] (wrapped) if the entity does not
	// exist. Intended for feed producers and seeding tools.
	DeleteEntity(ctx context.Context, collection string, entityID string) (models.UpsertEntityResponse, error)
}

// ChangeFeed is the read-only, typed view of one collection's change feed that
// the sync engine consumes. It narrows [FeedClient] to a single collection and
// decodes raw payloads into E.
type ChangeFeed[E models.Entity] interface {
	// Changes returns collection changes with version greater than since, in
	// ascending version order, together with the feed's latest version and
	// truncation flag.
	Changes(ctx context.Context, since int64) (models.ChangeList, error)

	// LatestVersion returns the collection's current version counter.
	LatestVersion(ctx context.Context) (int64, error)

	// FetchEntities returns decoded entities for ids, preserving request
	// order. Ids unknown to the server are omitted without error.
	FetchEntities(ctx context.Context, ids []string) ([]E, error)
}
