package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-library-api/models"
)

// UserRepository persists identities. Default reads never populate
// PasswordHash; only FindUserByIDWithPassword does.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByIDWithPassword(ctx context.Context, id string) (models.User, error)
	FindUserByEmailOrUsername(ctx context.Context, email, username string) (models.User, error)
	FindUserByExternalID(ctx context.Context, externalID string) (models.User, error)
	LinkExternalID(ctx context.Context, userID, externalID string) (models.User, error)
	SaveUser(ctx context.Context, user models.User) (models.User, error)
}

// AuthorRepository persists catalog authors.
type AuthorRepository interface {
	ListAuthors(ctx context.Context) ([]models.Author, error)
	GetAuthor(ctx context.Context, id string) (models.Author, error)
	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)
	UpdateAuthor(ctx context.Context, update models.AuthorUpdate) (models.Author, error)
	DeleteAuthor(ctx context.Context, id string) error
}

// BookRepository persists catalog books. Reads embed the author summary.
type BookRepository interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (models.Book, error)
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database call is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
