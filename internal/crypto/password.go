// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new digests.
const DefaultCost = 10

// ErrEmptyPassword is returned by Hash when asked to hash an empty string.
var ErrEmptyPassword = errors.New("password is empty")

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a bcrypt-backed [PasswordHasher]. A cost
// outside bcrypt's accepted range falls back to [DefaultCost].
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. bcrypt embeds a random salt in the
// digest, so repeated calls with the same input yield different strings.
func (h *bcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher].
func (h *bcryptHasher) Verify(plain, hashed string) bool {
	if hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
