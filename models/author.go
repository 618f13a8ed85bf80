// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Author is a catalog record describing a book author.
type Author struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName" validate:"required"`
	LastName    string    `json:"lastName" validate:"required"`
	Biography   string    `json:"biography" validate:"required"`
	BirthDate   Date      `json:"birthDate"`
	Nationality string    `json:"nationality" validate:"required"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthorSummary is the short author representation embedded in book listings.
type AuthorSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthorUpdate carries a partial update of an [Author].
// Only non-nil fields are applied.
type AuthorUpdate struct {
	ID          string  `json:"-"`
	FirstName   *string `json:"firstName,omitempty" validate:"omitnil,min=1"`
	LastName    *string `json:"lastName,omitempty" validate:"omitnil,min=1"`
	Biography   *string `json:"biography,omitempty" validate:"omitnil,min=1"`
	BirthDate   *Date   `json:"birthDate,omitempty"`
	Nationality *string `json:"nationality,omitempty" validate:"omitnil,min=1"`
}

// IsEmpty reports whether the update changes nothing.
func (u AuthorUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Biography == nil &&
		u.BirthDate == nil && u.Nationality == nil
}
