package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-library-api/models"
)

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue signs a token whose subject is userID.
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify checks signature, issuer and expiry and returns the subject.
	// It fails with ErrTokenIsExpired or ErrTokenIsInvalid.
	Verify(ctx context.Context, token string) (string, error)
}

// AuthService handles local registration and login.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CurrentUser(ctx context.Context, userID string) (models.User, error)
}

// IdentityResolver maps an external provider profile onto a local identity,
// creating or linking the account when needed.
type IdentityResolver interface {
	Resolve(ctx context.Context, profile models.ExternalProfile) (models.User, error)
}

// SessionBridge carries an identity across the OAuth redirect as an opaque
// reference kept in a short-lived server-side session.
type SessionBridge interface {
	ToSessionRef(user models.User) string
	FromSessionRef(ctx context.Context, ref string) (models.User, error)
}

type AuthorService interface {
	ListAuthors(ctx context.Context) ([]models.Author, error)
	GetAuthor(ctx context.Context, id string) (models.Author, error)
	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)
	UpdateAuthor(ctx context.Context, update models.AuthorUpdate) (models.Author, error)
	DeleteAuthor(ctx context.Context, id string) error
}

type BookService interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (models.Book, error)
	CreateBook(ctx context.Context, in models.BookInput) (models.Book, error)
	UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthorServiceWrapper defines middleware composition for AuthorService.
// Implementations wrap an existing AuthorService to add behavior such as
// validation.
type AuthorServiceWrapper interface {
	Wrap(AuthorService) AuthorService
}

// BookServiceWrapper defines middleware composition for BookService.
type BookServiceWrapper interface {
	Wrap(BookService) BookService
}
