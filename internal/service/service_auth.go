package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-library-api/internal/crypto"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/internal/validators"
	"github.com/MKhiriev/go-library-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles local registration and credential verification on top of a
// UserRepository. Passwords are hashed by the repository decorator on the
// way in and checked here with the PasswordHasher on login.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher verifies a login password against the stored digest.
	hasher crypto.PasswordHasher

	// validator checks request bodies before any repository call.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, hasher and validator.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// Register creates a new local account.
//
// The username is trimmed and the email trimmed and lowercased before the
// request is validated. An existing account with the same email or username
// fails the call with ErrUserAlreadyExists, as does losing a race against a
// concurrent registration (the unique indexes decide).
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided wrapping the validator error.
//   - ErrUserAlreadyExists if the email or username is taken.
//   - A wrapped storage error for anything else.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmailOrUsername(ctx, req.Email, req.Username)
	switch {
	case err == nil:
		log.Info().Str("username", req.Username).Str("email", req.Email).Msg("registration with taken email or username")
		return models.User{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Register").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, req.User())
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing local account by email and password.
//
// Every failure that depends on the submitted credentials (missing fields,
// unknown email, account without a local password, wrong password) is
// reported as the same ErrInvalidCredentials so that callers cannot tell
// which one happened. Only infrastructure failures are returned otherwise.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.User{}, ErrInvalidCredentials
	}

	found, err := a.userRepository.FindUserByEmailOrUsername(ctx, req.Email, "")
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("email", req.Email).Msg("login for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	withPassword, err := a.userRepository.FindUserByIDWithPassword(ctx, found.ID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !withPassword.HasLocalPassword() || !a.hasher.Verify(req.Password, withPassword.PasswordHash) {
		log.Info().Str("id", found.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	withPassword.PasswordHash = ""
	return withPassword, nil
}

// CurrentUser re-reads the identity with the given id. A missing identity
// is reported as ErrUserNotFound.
func (a *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CurrentUser").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
