// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-delta-sync feed-server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidClientCredentials is returned when the supplied client
	// id/secret combination does not match any registered sync client.
	MsgInvalidClientCredentials = "invalid client credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnknownCollection is returned when a request targets a collection
	// name that is not registered on this feed server.
	MsgUnknownCollection = "unknown collection"

	// MsgInvalidSinceVersion is returned when the "since" query parameter is
	// missing, non-numeric, or negative.
	MsgInvalidSinceVersion = "invalid since version"

	// MsgNoEntityIDsProvided is returned when a batch fetch request contains
	// an empty id list.
	MsgNoEntityIDsProvided = "no entity IDs provided"

	// MsgEmptyEntityID is returned when at least one entry in a batch fetch
	// request has a blank (empty string) entity id, or when a write targets
	// an empty id path segment.
	MsgEmptyEntityID = "empty entity ID provided"

	// MsgInvalidEntityPayload is returned when an admin upsert carries a
	// body that is not a JSON object.
	MsgInvalidEntityPayload = "invalid entity payload"

	// MsgEntityNotFound is returned when a delete targets an entity id that
	// is not present in the collection.
	MsgEntityNotFound = "entity not found"

	// MsgIntegrityCheckFailed is returned when the payload hash header does
	// not match the hash computed over the received body.
	MsgIntegrityCheckFailed = "integrity check failed"
)
