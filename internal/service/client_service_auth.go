package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/internal/adapter"
	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/models"
)

type clientAuthService struct {
	adapter      adapter.FeedClient
	clientID     string
	clientSecret string

	logger *logger.Logger
}

// NewClientAuthService builds a [ClientAuthService] that authenticates with
// the credentials from adapterCfg.
func NewClientAuthService(feedClient adapter.FeedClient, adapterCfg config.ClientAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:      feedClient,
		clientID:     adapterCfg.ClientID,
		clientSecret: adapterCfg.ClientSecret,
		logger:       log,
	}
}

// Authenticate implements [ClientAuthService]. It exchanges the configured
// client id and secret for a bearer token; the feed client installs the token
// on success, so subsequent sync requests are authenticated automatically.
func (a *clientAuthService) Authenticate(ctx context.Context) error {
	if a.clientID == "" || a.clientSecret == "" {
		return ErrInvalidDataProvided
	}

	req := models.TokenRequest{ClientID: a.clientID, ClientSecret: a.clientSecret}
	if _, err := a.adapter.RequestToken(ctx, req); err != nil {
		return fmt.Errorf("request token: %w", mapFeedError(err))
	}

	a.logger.Info().Str("client_id", a.clientID).Msg("authenticated with feed server")
	return nil
}
