package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles identity creation, lookup and linking against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger      *logger.Logger
	db          *DB
	idGenerator *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:          db,
		logger:      logger,
		idGenerator: utils.NewUUIDGenerator(),
	}
}

// CreateUser persists a new identity and returns the stored representation
// (without the password hash). The id is generated here.
//
// Username and email are normalized before the insert.
//
// Error handling:
//   - neither password hash nor external id → [ErrUserHasNoCredential].
//   - unknown role or another check violation → [ErrInvalidUserData].
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrUnexpectedDB].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.PasswordHash == "" && user.ExternalID == "" {
		return models.User{}, ErrUserHasNoCredential
	}
	if user.ID == "" {
		user.ID = r.idGenerator.Generate()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if !user.Role.IsValid() {
		return models.User{}, fmt.Errorf("%w: role %q", ErrInvalidUserData, user.Role)
	}
	user = normalizeUser(user)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, wrapBuildError(err)
	}

	created, err := r.queryUser(ctx, query, args, false)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("class", r.db.classify(err)).Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByID returns the identity without its password hash.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id}, false)
}

// FindUserByIDWithPassword returns the identity including its password
// hash. Only local login verification needs it.
func (r *userRepository) FindUserByIDWithPassword(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByIDWithPassword", sq.Eq{"id": id}, true)
}

// FindUserByEmailOrUsername returns the identity whose email or username
// matches. Empty arguments are ignored; both empty is a miss.
func (r *userRepository) FindUserByEmailOrUsername(ctx context.Context, email, username string) (models.User, error) {
	or := sq.Or{}
	if email = normalizeEmail(email); email != "" {
		or = append(or, sq.Eq{"email": email})
	}
	if username = strings.TrimSpace(username); username != "" {
		or = append(or, sq.Eq{"username": username})
	}
	if len(or) == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.findUser(ctx, "*userRepository.FindUserByEmailOrUsername", or, false)
}

// FindUserByExternalID returns the identity linked to a provider account.
func (r *userRepository) FindUserByExternalID(ctx context.Context, externalID string) (models.User, error) {
	if externalID == "" {
		return models.User{}, ErrUserNotFound
	}
	return r.findUser(ctx, "*userRepository.FindUserByExternalID", sq.Eq{"external_id": externalID}, false)
}

// LinkExternalID attaches a provider account id to an existing identity.
// A collision with another identity's external id yields
// [ErrUserAlreadyExists].
func (r *userRepository) LinkExternalID(ctx context.Context, userID, externalID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLinkExternalIDQuery(userID, externalID)
	if err != nil {
		return models.User{}, wrapBuildError(err)
	}

	linked, err := r.queryUser(ctx, query, args, false)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.LinkExternalID").Str("user_id", userID).Msg("error linking external id")
		return models.User{}, err
	}

	return linked, nil
}

// SaveUser writes the mutable fields of an existing identity. The password
// hash is written only when present on the argument. Username and email are
// normalized as in [userRepository.CreateUser].
func (r *userRepository) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if !user.Role.IsValid() {
		return models.User{}, fmt.Errorf("%w: role %q", ErrInvalidUserData, user.Role)
	}
	user = normalizeUser(user)

	query, args, err := buildSaveUserQuery(user)
	if err != nil {
		return models.User{}, wrapBuildError(err)
	}

	saved, err := r.queryUser(ctx, query, args, false)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SaveUser").Str("user_id", user.ID).Msg("error saving user")
		return models.User{}, err
	}

	return saved, nil
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Sqlizer, withPassword bool) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(where, withPassword)
	if err != nil {
		return models.User{}, wrapBuildError(err)
	}

	user, err := r.queryUser(ctx, query, args, withPassword)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Err(err).Str("func", funcName).Msg("error finding user")
	}

	return user, err
}

// queryUser runs a single-row statement returning user columns and maps
// driver errors onto the package sentinels.
func (r *userRepository) queryUser(ctx context.Context, query string, args []any, withPassword bool) (models.User, error) {
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return models.User{}, mapUserError(err)
	}

	var (
		user         models.User
		externalID   sql.NullString
		role         string
		passwordHash sql.NullString
	)
	dest := []any{&user.ID, &user.Username, &user.Email, &externalID, &role, &user.CreatedAt, &user.UpdatedAt}
	if withPassword {
		dest = append(dest, &passwordHash)
	}

	if err := row.Scan(dest...); err != nil {
		return models.User{}, mapUserError(err)
	}

	user.ExternalID = externalID.String
	user.PasswordHash = passwordHash.String
	user.Role = models.Role(role)

	return user, nil
}

func mapUserError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrUserAlreadyExists
	case pgerrcode.CheckViolation:
		if postgresConstraint(err) == credentialCheckConstraint {
			return ErrUserHasNoCredential
		}
		return fmt.Errorf("%w: %w", ErrInvalidUserData, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}
}

// credentialCheckConstraint requires a password hash or an external id on
// every users row.
const credentialCheckConstraint = "users_credential_check"

func normalizeUser(user models.User) models.User {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = normalizeEmail(user.Email)
	return user
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
