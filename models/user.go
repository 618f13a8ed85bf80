// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an identity that can authenticate against the API, either
// with local credentials, with a linked GitHub account, or with both.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the system-generated, immutable identifier of the user (UUIDv7).
	ID string `json:"id"`

	// Username is the unique, trimmed display login.
	Username string `json:"username"`

	// Email is the unique, trimmed and lowercased e-mail address.
	Email string `json:"email"`

	// Password carries the plaintext password on its way in (registration,
	// login, password change). It is never persisted and never serialised
	// back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest of the local password. Empty for
	// accounts created through federated login and for default reads.
	PasswordHash string `json:"-"`

	// ExternalID is the GitHub account id of a federated identity. Unique
	// among users that have one.
	ExternalID string `json:"-"`

	// Role controls access to admin-only operations.
	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasLocalPassword reports whether the account can log in with a password.
func (u User) HasLocalPassword() bool {
	return u.PasswordHash != ""
}

// IsFederated reports whether the account is linked to an external provider.
func (u User) IsFederated() bool {
	return u.ExternalID != ""
}

// View returns the public projection of the user returned by the API.
func (u User) View() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// UserView is the client-facing representation of a [User].
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
