package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/models"
)

type authorService struct {
	authorRepository store.AuthorRepository

	logger *logger.Logger
}

func NewAuthorService(authorRepository store.AuthorRepository, logger *logger.Logger) AuthorService {
	return &authorService{
		authorRepository: authorRepository,
		logger:           logger,
	}
}

func (a *authorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	return a.authorRepository.ListAuthors(ctx)
}

func (a *authorService) GetAuthor(ctx context.Context, id string) (models.Author, error) {
	return a.authorRepository.GetAuthor(ctx, id)
}

func (a *authorService) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	return a.authorRepository.CreateAuthor(ctx, trimAuthor(author))
}

func (a *authorService) UpdateAuthor(ctx context.Context, update models.AuthorUpdate) (models.Author, error) {
	return a.authorRepository.UpdateAuthor(ctx, trimAuthorUpdate(update))
}

func (a *authorService) DeleteAuthor(ctx context.Context, id string) error {
	return a.authorRepository.DeleteAuthor(ctx, id)
}

func trimAuthor(author models.Author) models.Author {
	author.FirstName = strings.TrimSpace(author.FirstName)
	author.LastName = strings.TrimSpace(author.LastName)
	author.Biography = strings.TrimSpace(author.Biography)
	author.Nationality = strings.TrimSpace(author.Nationality)
	return author
}

func trimAuthorUpdate(update models.AuthorUpdate) models.AuthorUpdate {
	update.FirstName = trimPtr(update.FirstName)
	update.LastName = trimPtr(update.LastName)
	update.Biography = trimPtr(update.Biography)
	update.Nationality = trimPtr(update.Nationality)
	return update
}

// trimPtr returns a pointer to the trimmed copy of *s, or nil.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
