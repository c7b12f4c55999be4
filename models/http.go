package models

// EntityBatchRequest asks the feed server for the full payloads of the
// listed entity ids within one collection. Used by clients after a change
// list told them which ids were added or updated.
type EntityBatchRequest struct {
	// IDs are the entity identifiers to fetch. Ids that no longer exist
	// (deleted between the change-list fetch and this call) are silently
	// omitted from the response; their absence is not an error.
	IDs []string `json:"ids"`

	// Length is the number of entries in IDs. Provided so the server can
	// validate the request without iterating the slice.
	Length int `json:"length"`
}

// TokenRequest carries the credentials of a registered sync client
// exchanging them for a signed JWT.
type TokenRequest struct {
	// ClientID identifies the sync client (device or service).
	ClientID string `json:"client_id"`

	// ClientSecret is the shared secret configured for the client.
	ClientSecret string `json:"client_secret"`
}
