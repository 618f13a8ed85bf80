package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-library-api/internal/config"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the JWT implementation of TokenService. The signing key
// is read once from configuration and never changes for the life of the
// process, so rotating it invalidates every token issued before.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the App configuration.
// The configuration is expected to be validated already: an empty signing
// key is rejected at startup.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Issue signs a token carrying userID as its subject.
func (t *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.tokenIssuer, userID, t.tokenDuration, t.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates tokenString and returns its subject.
//
// Expired tokens are reported as ErrTokenIsExpired. Every other failure
// (bad signature, wrong issuer, malformed input, missing subject) is
// reported as ErrTokenIsInvalid.
func (t *tokenService) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenIsExpired
		}
		return "", ErrTokenIsInvalid
	}

	if token.UserID == "" {
		return "", ErrTokenIsInvalid
	}

	return token.UserID, nil
}
