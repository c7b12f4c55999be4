package service

import (
	"context"
	"crypto/hmac"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/utils"
	"github.com/MKhiriev/go-delta-sync/models"
)

// defaults applied when the corresponding config fields are left empty.
const (
	defaultTokenIssuer   = "go-delta-sync"
	defaultTokenDuration = time.Hour
)

// authService is the concrete implementation of AuthService.
// Sync clients are not self-registering users: the operator configures the
// accepted id/secret pairs, and the service turns a valid pair into a signed
// JWT whose subject is the client id.
type authService struct {
	// clients maps a configured client id to its shared secret.
	clients map[string]string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from the sync-client registry
// and token parameters in cfg. Registry entries use the form "id:secret";
// malformed entries are skipped with a warning.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	clients := make(map[string]string, len(cfg.SyncClients))
	for _, entry := range cfg.SyncClients {
		id, secret, ok := strings.Cut(entry, ":")
		if !ok || id == "" || secret == "" {
			logger.Warn().Str("entry", entry).Msg("skipping malformed sync client entry, want id:secret")
			continue
		}
		clients[id] = secret
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = defaultTokenIssuer
	}
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = defaultTokenDuration
	}

	return &authService{
		clients:       clients,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   issuer,
		tokenDuration: duration,
		logger:        logger,
	}
}

// IssueToken verifies the supplied client credentials against the configured
// registry and issues a signed JWT.
//
// Returns the token model or:
//   - ErrInvalidDataProvided if ClientID or ClientSecret is empty.
//   - ErrInvalidClientCredentials if the id is unknown or the secret is wrong.
//   - ErrTokenCreationFailed (wrapped) if JWT generation fails.
func (a *authService) IssueToken(ctx context.Context, req models.TokenRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.ClientID == "" || req.ClientSecret == "" {
		log.Error().Str("client_id", req.ClientID).Msg("invalid token request data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	secret, ok := a.clients[req.ClientID]
	if !ok || !hmac.Equal([]byte(secret), []byte(req.ClientSecret)) {
		log.Error().Str("client_id", req.ClientID).Msg("unknown sync client or wrong secret")
		return models.Token{}, ErrInvalidClientCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, req.ClientID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("client_id", req.ClientID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
