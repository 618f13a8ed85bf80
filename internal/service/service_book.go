package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/models"
)

type bookService struct {
	bookRepository store.BookRepository

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

func (b *bookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return b.bookRepository.ListBooks(ctx)
}

func (b *bookService) GetBook(ctx context.Context, id string) (models.Book, error) {
	return b.bookRepository.GetBook(ctx, id)
}

// CreateBook stores a new book. A reference to a missing author is
// reported as ErrBookAuthorNotFound; a duplicate ISBN as
// store.ErrISBNAlreadyExists.
func (b *bookService) CreateBook(ctx context.Context, in models.BookInput) (models.Book, error) {
	book, err := b.bookRepository.CreateBook(ctx, trimBookInput(in).Book())
	return book, b.authorRef(err)
}

func (b *bookService) UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error) {
	book, err := b.bookRepository.UpdateBook(ctx, trimBookUpdate(update))
	return book, b.authorRef(err)
}

// authorRef turns a missing referenced author into a client error, keeping
// store.ErrAuthorNotFound for lookups of the author itself.
func (b *bookService) authorRef(err error) error {
	if errors.Is(err, store.ErrAuthorNotFound) {
		return fmt.Errorf("%w: %w", ErrBookAuthorNotFound, err)
	}
	return err
}

func (b *bookService) DeleteBook(ctx context.Context, id string) error {
	return b.bookRepository.DeleteBook(ctx, id)
}

func trimBookInput(in models.BookInput) models.BookInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.ISBN = strings.TrimSpace(in.ISBN)
	in.Genre = strings.TrimSpace(in.Genre)
	in.Description = strings.TrimSpace(in.Description)
	in.Language = strings.TrimSpace(in.Language)
	in.Publisher = strings.TrimSpace(in.Publisher)
	return in
}

func trimBookUpdate(update models.BookUpdate) models.BookUpdate {
	update.Title = trimPtr(update.Title)
	update.Author = trimPtr(update.Author)
	update.ISBN = trimPtr(update.ISBN)
	update.Genre = trimPtr(update.Genre)
	update.Description = trimPtr(update.Description)
	update.Language = trimPtr(update.Language)
	update.Publisher = trimPtr(update.Publisher)
	return update
}
