package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-api/internal/validators"
	"github.com/MKhiriev/go-library-api/models"
)

// AuthorValidationService rejects malformed ids and bodies before they reach
// the wrapped AuthorService.
type AuthorValidationService struct {
	inner     AuthorService
	validator validators.Validator
}

func NewAuthorValidationService(validator validators.Validator) AuthorServiceWrapper {
	return &AuthorValidationService{validator: validator}
}

func (v *AuthorValidationService) Wrap(inner AuthorService) AuthorService {
	v.inner = inner
	return v
}

func (v *AuthorValidationService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	return v.inner.ListAuthors(ctx)
}

func (v *AuthorValidationService) GetAuthor(ctx context.Context, id string) (models.Author, error) {
	if err := v.validator.Validate(ctx, id, validators.FieldAuthorID); err != nil {
		return models.Author{}, invalid(err)
	}
	return v.inner.GetAuthor(ctx, id)
}

func (v *AuthorValidationService) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	author = trimAuthor(author)
	if err := v.validator.Validate(ctx, author); err != nil {
		return models.Author{}, invalid(err)
	}
	return v.inner.CreateAuthor(ctx, author)
}

func (v *AuthorValidationService) UpdateAuthor(ctx context.Context, update models.AuthorUpdate) (models.Author, error) {
	if err := v.validator.Validate(ctx, update.ID, validators.FieldAuthorID); err != nil {
		return models.Author{}, invalid(err)
	}
	update = trimAuthorUpdate(update)
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Author{}, invalid(err)
	}
	return v.inner.UpdateAuthor(ctx, update)
}

func (v *AuthorValidationService) DeleteAuthor(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id, validators.FieldAuthorID); err != nil {
		return invalid(err)
	}
	return v.inner.DeleteAuthor(ctx, id)
}

// BookValidationService rejects malformed ids and bodies before they reach
// the wrapped BookService.
type BookValidationService struct {
	inner     BookService
	validator validators.Validator
}

func NewBookValidationService(validator validators.Validator) BookServiceWrapper {
	return &BookValidationService{validator: validator}
}

func (v *BookValidationService) Wrap(inner BookService) BookService {
	v.inner = inner
	return v
}

func (v *BookValidationService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return v.inner.ListBooks(ctx)
}

func (v *BookValidationService) GetBook(ctx context.Context, id string) (models.Book, error) {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return models.Book{}, invalid(err)
	}
	return v.inner.GetBook(ctx, id)
}

func (v *BookValidationService) CreateBook(ctx context.Context, in models.BookInput) (models.Book, error) {
	in = trimBookInput(in)
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Book{}, invalid(err)
	}
	return v.inner.CreateBook(ctx, in)
}

func (v *BookValidationService) UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error) {
	if err := v.validator.Validate(ctx, update.ID, validators.FieldID); err != nil {
		return models.Book{}, invalid(err)
	}
	update = trimBookUpdate(update)
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Book{}, invalid(err)
	}
	return v.inner.UpdateBook(ctx, update)
}

func (v *BookValidationService) DeleteBook(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return invalid(err)
	}
	return v.inner.DeleteBook(ctx, id)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
