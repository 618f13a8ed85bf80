package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/models"
)

// sessionBridge stores only the identity id in the session and re-reads
// the full identity when the session is restored.
type sessionBridge struct {
	userRepository store.UserRepository
}

// NewSessionBridge returns a SessionBridge backed by userRepository.
func NewSessionBridge(userRepository store.UserRepository) SessionBridge {
	return &sessionBridge{userRepository: userRepository}
}

// ToSessionRef returns the reference stored in the session for user.
func (s *sessionBridge) ToSessionRef(user models.User) string {
	return user.ID
}

// FromSessionRef re-fetches the identity behind ref. An identity deleted in
// the meantime fails the session with ErrSessionIdentityGone.
func (s *sessionBridge) FromSessionRef(ctx context.Context, ref string) (models.User, error) {
	if ref == "" {
		return models.User{}, ErrSessionIdentityGone
	}

	user, err := s.userRepository.FindUserByID(ctx, ref)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrSessionIdentityGone
		}
		logger.FromContext(ctx).Err(err).Str("func", "*sessionBridge.FromSessionRef").Msg("restoring session identity failed")
		return models.User{}, fmt.Errorf("restoring session identity failed: %w", err)
	}

	return user, nil
}
