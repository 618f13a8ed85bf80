// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Book is a catalog record. AuthorID references an [Author]; Author is
// populated on reads with the author's summary.
type Book struct {
	ID          string         `json:"id"`
	Title       string         `json:"title" validate:"required"`
	AuthorID    string         `json:"-"`
	Author      *AuthorSummary `json:"author,omitempty"`
	ISBN        string         `json:"isbn" validate:"required"`
	PublishYear int            `json:"publishYear" validate:"required"`
	Genre       string         `json:"genre" validate:"required"`
	Description string         `json:"description" validate:"required"`
	PageCount   int            `json:"pageCount" validate:"required"`
	Language    string         `json:"language" validate:"required"`
	Publisher   string         `json:"publisher" validate:"required"`
	Available   bool           `json:"available"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// BookInput is the request body for creating a book. The author is
// referenced by id.
type BookInput struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	ISBN        string `json:"isbn" validate:"required"`
	PublishYear int    `json:"publishYear" validate:"required"`
	Genre       string `json:"genre" validate:"required"`
	Description string `json:"description" validate:"required"`
	PageCount   int    `json:"pageCount" validate:"required"`
	Language    string `json:"language" validate:"required"`
	Publisher   string `json:"publisher" validate:"required"`
	Available   *bool  `json:"available,omitempty"`
}

// Book converts the input into a [Book]. Available defaults to true.
func (in BookInput) Book() Book {
	available := true
	if in.Available != nil {
		available = *in.Available
	}

	return Book{
		Title:       in.Title,
		AuthorID:    in.Author,
		ISBN:        in.ISBN,
		PublishYear: in.PublishYear,
		Genre:       in.Genre,
		Description: in.Description,
		PageCount:   in.PageCount,
		Language:    in.Language,
		Publisher:   in.Publisher,
		Available:   available,
	}
}

// BookUpdate carries a partial update of a [Book].
// Only non-nil fields are applied.
type BookUpdate struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty" validate:"omitnil,min=1"`
	Author      *string `json:"author,omitempty" validate:"omitnil,min=1"`
	ISBN        *string `json:"isbn,omitempty" validate:"omitnil,min=1"`
	PublishYear *int    `json:"publishYear,omitempty" validate:"omitnil,min=1"`
	Genre       *string `json:"genre,omitempty" validate:"omitnil,min=1"`
	Description *string `json:"description,omitempty" validate:"omitnil,min=1"`
	PageCount   *int    `json:"pageCount,omitempty" validate:"omitnil,min=1"`
	Language    *string `json:"language,omitempty" validate:"omitnil,min=1"`
	Publisher   *string `json:"publisher,omitempty" validate:"omitnil,min=1"`
	Available   *bool   `json:"available,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.ISBN == nil && u.PublishYear == nil &&
		u.Genre == nil && u.Description == nil && u.PageCount == nil && u.Language == nil &&
		u.Publisher == nil && u.Available == nil
}
