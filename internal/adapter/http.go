package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/utils"
	"github.com/MKhiriev/go-delta-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpFeedClient struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPFeedClient constructs an HTTP/REST implementation of [FeedClient].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for transport
// integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPFeedClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (FeedClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpFeedClient{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [FeedClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
// Safe for concurrent use with the periodic sync job.
func (h *httpFeedClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [FeedClient]. It returns the bearer token currently held
// by the client, or an empty string if none has been set.
func (h *httpFeedClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// RequestToken implements [FeedClient]. It POSTs the sync-client credentials
// to POST /api/auth/token. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpFeedClient) RequestToken(ctx context.Context, req models.TokenRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/token")
	if err != nil {
		return "", fmt.Errorf("token request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("token request parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

// ServerVersion implements [FeedClient]. It GETs the public build-version
// endpoint GET /api/version/ and returns the body as a plain string.
func (h *httpFeedClient) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// Changes implements [FeedClient]. It GETs
// GET /api/collections/{collection}/changes?since=N and decodes the response
// into a [models.ChangeList]. Requires a valid bearer token.
func (h *httpFeedClient) Changes(ctx context.Context, collection string, since int64) (models.ChangeList, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("since", strconv.FormatInt(since, 10)).
		Get("/api/collections/" + url.PathEscape(collection) + "/changes")
	if err != nil {
		return models.ChangeList{}, fmt.Errorf("changes request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangeList{}, err
	}

	var clr models.ChangeListResponse
	if err = json.Unmarshal(resp.Body(), &clr); err != nil {
		return models.ChangeList{}, fmt.Errorf("decode changes response: %w", err)
	}

	return models.ChangeList{
		Items:         clr.Items,
		LatestVersion: clr.LatestVersion,
		Truncated:     clr.Truncated,
	}, nil
}

// LatestVersion implements [FeedClient]. It GETs
// GET /api/collections/{collection}/version and returns the collection's
// current version counter. Requires a valid bearer token.
func (h *httpFeedClient) LatestVersion(ctx context.Context, collection string) (int64, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/collections/" + url.PathEscape(collection) + "/version")
	if err != nil {
		return 0, fmt.Errorf("latest version request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var vr models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return 0, fmt.Errorf("decode version response: %w", err)
	}

	return vr.Version, nil
}

// FetchEntities implements [FeedClient]. It sets req.Length and POSTs the id
// batch to POST /api/collections/{collection}/entities/batch. Returns the raw
// entity payloads in request order; ids unknown to the server are omitted.
// Requires a valid bearer token.
func (h *httpFeedClient) FetchEntities(ctx context.Context, collection string, ids []string) ([]json.RawMessage, error) {
	req := models.EntityBatchRequest{IDs: ids, Length: len(ids)}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/collections/" + url.PathEscape(collection) + "/entities/batch")
	if err != nil {
		return nil, fmt.Errorf("entity batch request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var br models.EntityBatchResponse
	if err = json.Unmarshal(resp.Body(), &br); err != nil {
		return nil, fmt.Errorf("decode entity batch response: %w", err)
	}

	return br.Entities, nil
}

// CreateEntity implements [FeedClient]. It computes a transport integrity hash
// over the payload and POSTs it to POST /api/collections/{collection}/entities.
// The server assigns the entity id. Requires a valid bearer token.
func (h *httpFeedClient) CreateEntity(ctx context.Context, collection string, payload any) (models.UpsertEntityResponse, error) {
	req, err := h.writeRequest(ctx, payload)
	if err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("create entity request: %w", err)
	}

	resp, err := req.
		Post("/api/collections/" + url.PathEscape(collection) + "/entities")
	if err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("create entity request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpsertEntityResponse{}, err
	}

	return decodeUpsertResponse(resp)
}

// UpsertEntity implements [FeedClient]. It computes a transport integrity hash
// over the payload and PUTs it to
// PUT /api/collections/{collection}/entities/{entityID}. Requires a valid
// bearer token.
func (h *httpFeedClient) UpsertEntity(ctx context.Context, collection string, entityID string, payload any) (models.UpsertEntityResponse, error) {
	req, err := h.writeRequest(ctx, payload)
	if err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("upsert entity request: %w", err)
	}

	resp, err := req.
		Put("/api/collections/" + url.PathEscape(collection) + "/entities/" + url.PathEscape(entityID))
	if err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("upsert entity request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpsertEntityResponse{}, err
	}

	return decodeUpsertResponse(resp)
}

// DeleteEntity implements [FeedClient]. It sends
// DELETE /api/collections/{collection}/entities/{entityID}. Returns
// [ErrNotFound] (wrapped) if the entity does not exist. Requires a valid
// bearer token.
func (h *httpFeedClient) DeleteEntity(ctx context.Context, collection string, entityID string) (models.UpsertEntityResponse, error) {
	resp, err := h.authedRequest(ctx).
		Delete("/api/collections/" + url.PathEscape(collection) + "/entities/" + url.PathEscape(entityID))
	if err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("delete entity request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpsertEntityResponse{}, err
	}

	return decodeUpsertResponse(resp)
}

func (h *httpFeedClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// writeRequest prepares an authenticated request carrying a JSON payload and,
// when a hash key is configured, the payload integrity hash header the server
// verifies on write endpoints. A payload that cannot be serialized fails the
// write before anything is sent.
func (h *httpFeedClient) writeRequest(ctx context.Context, payload any) (*resty.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode write payload: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hashKey != "" {
		req.SetHeader(utils.PayloadHashHeader, hex.EncodeToString(utils.Hash(body)))
	}
	return req, nil
}

func decodeUpsertResponse(resp *resty.Response) (models.UpsertEntityResponse, error) {
	var ur models.UpsertEntityResponse
	if err := json.Unmarshal(resp.Body(), &ur); err != nil {
		return models.UpsertEntityResponse{}, fmt.Errorf("decode entity write response: %w", err)
	}
	return ur, nil
}
