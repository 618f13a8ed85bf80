package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-api/internal/crypto"
	"github.com/MKhiriev/go-library-api/models"
)

// hashingUserRepository decorates a [UserRepository] so that a plaintext
// password carried on an identity is hashed right before it is written.
// Writes that carry no plaintext leave the stored hash alone, which keeps
// repeated saves from re-hashing an already hashed value.
type hashingUserRepository struct {
	UserRepository
	hasher crypto.PasswordHasher
}

// NewHashingUserRepository wraps next with automatic password hashing on
// CreateUser and SaveUser.
func NewHashingUserRepository(next UserRepository, hasher crypto.PasswordHasher) UserRepository {
	return &hashingUserRepository{
		UserRepository: next,
		hasher:         hasher,
	}
}

func (r *hashingUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user, err := r.hashPassword(user)
	if err != nil {
		return models.User{}, err
	}
	return r.UserRepository.CreateUser(ctx, user)
}

func (r *hashingUserRepository) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	user, err := r.hashPassword(user)
	if err != nil {
		return models.User{}, err
	}
	return r.UserRepository.SaveUser(ctx, user)
}

// hashPassword treats a non-empty plaintext as a password change and hashes
// it, even when it equals the stored password. An empty plaintext keeps the
// stored hash, so saves that do not touch the password never re-hash.
func (r *hashingUserRepository) hashPassword(user models.User) (models.User, error) {
	if user.Password == "" {
		return user, nil
	}

	hashed, err := r.hasher.Hash(user.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user.PasswordHash = hashed
	user.Password = ""
	return user, nil
}
