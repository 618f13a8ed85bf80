package store

import (
	"github.com/MKhiriev/go-library-api/internal/crypto"
	"github.com/MKhiriev/go-library-api/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository   UserRepository
	AuthorRepository AuthorRepository
	BookRepository   BookRepository
}

// NewStorages builds every repository on top of db. The user repository is
// wrapped so that plaintext passwords are hashed before they are written.
func NewStorages(db *DB, hasher crypto.PasswordHasher, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewHashingUserRepository(NewUserRepository(db, logger), hasher),
		AuthorRepository: NewAuthorRepository(db, logger),
		BookRepository:   NewBookRepository(db, logger),
	}
}
