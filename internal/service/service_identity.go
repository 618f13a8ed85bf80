package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/models"
)

// providerDomains maps a provider key to the domain used when a profile
// carries no email at all.
var providerDomains = map[string]string{
	models.ProviderGitHub: "github.com",
}

// identityResolver resolves federated profiles against the UserRepository.
type identityResolver struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewIdentityResolver returns an IdentityResolver backed by userRepository.
func NewIdentityResolver(userRepository store.UserRepository, logger *logger.Logger) IdentityResolver {
	return &identityResolver{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Resolve maps profile to a local identity. The lookup order is:
//  1. an identity already linked to profile.ID is returned as is;
//  2. an identity owning the derived email gets profile.ID linked to it;
//  3. otherwise a new identity with role user is created.
//
// Any storage failure, including losing a race on a unique index, is
// returned as ErrIdentityResolutionFailed.
func (i *identityResolver) Resolve(ctx context.Context, profile models.ExternalProfile) (models.User, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*identityResolver.Resolve").
		Str("provider", profile.Provider).
		Str("external_id", profile.ID).
		Logger()

	if profile.ID == "" || strings.TrimSpace(profile.Username) == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrIdentityResolutionFailed, ErrInvalidExternalProfile)
	}

	linked, err := i.userRepository.FindUserByExternalID(ctx, profile.ID)
	if err == nil {
		log.Debug().Str("user_id", linked.ID).Msg("external id already linked")
		return linked, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("lookup by external id failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrIdentityResolutionFailed, err)
	}

	email := DeriveEmail(profile)

	existing, err := i.userRepository.FindUserByEmailOrUsername(ctx, email, "")
	if err == nil {
		linked, err = i.userRepository.LinkExternalID(ctx, existing.ID, profile.ID)
		if err != nil {
			log.Err(err).Str("user_id", existing.ID).Msg("linking external id failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrIdentityResolutionFailed, err)
		}
		log.Info().Str("user_id", linked.ID).Msg("external id linked to existing account")
		return linked, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("lookup by email failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrIdentityResolutionFailed, err)
	}

	created, err := i.userRepository.CreateUser(ctx, models.User{
		Username:   strings.TrimSpace(profile.Username),
		Email:      email,
		ExternalID: profile.ID,
		Role:       models.RoleUser,
	})
	if err != nil {
		log.Err(err).Msg("creating federated account failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrIdentityResolutionFailed, err)
	}

	log.Info().Str("user_id", created.ID).Msg("federated account created")
	return created, nil
}

// DeriveEmail returns the first non-empty email of profile, trimmed and
// lowercased. When the provider reported none, it synthesizes
// "<username>@<provider domain>", falling back to the provider key itself
// as the domain for providers without a known one.
func DeriveEmail(profile models.ExternalProfile) string {
	for _, email := range profile.Emails {
		if email = normalizeEmail(email); email != "" {
			return email
		}
	}

	domain, ok := providerDomains[profile.Provider]
	if !ok {
		domain = profile.Provider
	}

	return normalizeEmail(strings.TrimSpace(profile.Username) + "@" + domain)
}
