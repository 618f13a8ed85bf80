package service

import (
	"fmt"

	"github.com/MKhiriev/go-library-api/internal/config"
	"github.com/MKhiriev/go-library-api/internal/crypto"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/internal/validators"
)

type Services struct {
	TokenService     TokenService
	AuthService      AuthService
	IdentityResolver IdentityResolver
	SessionBridge    SessionBridge
	AuthorService    AuthorService
	BookService      BookService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		TokenService:     NewTokenService(cfg.App, logger),
		AuthService:      NewAuthService(storages.UserRepository, hasher, validator, logger),
		IdentityResolver: NewIdentityResolver(storages.UserRepository, logger),
		SessionBridge:    NewSessionBridge(storages.UserRepository),
		AuthorService:    NewAuthorValidationService(validator).Wrap(NewAuthorService(storages.AuthorRepository, logger)),
		BookService:      NewBookValidationService(validator).Wrap(NewBookService(storages.BookRepository, logger)),
		AppInfoService:   appInfoService,
	}, nil
}
