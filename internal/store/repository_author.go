package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/jackc/pgerrcode"
)

// authorRepository is the PostgreSQL-backed implementation of
// [AuthorRepository] over the "authors" table.
type authorRepository struct {
	*DB
	logger      *logger.Logger
	idGenerator *utils.UUIDGenerator
}

// NewAuthorRepository constructs an [AuthorRepository].
func NewAuthorRepository(db *DB, logger *logger.Logger) AuthorRepository {
	logger.Debug().Msg("creating author repository")
	return &authorRepository{
		DB:          db,
		logger:      logger,
		idGenerator: utils.NewUUIDGenerator(),
	}
}

func (r *authorRepository) ListAuthors(ctx context.Context) ([]models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAuthorsQuery()
	if err != nil {
		return nil, wrapBuildError(err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	authors := make([]models.Author, 0, 16)
	for rows.Next() {
		author, scanErr := scanAuthor(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*authorRepository.ListAuthors").Msg("failed to scan author row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		authors = append(authors, author)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return authors, nil
}

func (r *authorRepository) GetAuthor(ctx context.Context, id string) (models.Author, error) {
	query, args, err := buildSelectAuthorQuery(id)
	if err != nil {
		return models.Author{}, wrapBuildError(err)
	}

	return r.queryAuthor(ctx, "*authorRepository.GetAuthor", query, args)
}

func (r *authorRepository) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	if author.ID == "" {
		author.ID = r.idGenerator.Generate()
	}

	query, args, err := buildInsertAuthorQuery(author)
	if err != nil {
		return models.Author{}, wrapBuildError(err)
	}

	return r.queryAuthor(ctx, "*authorRepository.CreateAuthor", query, args)
}

func (r *authorRepository) UpdateAuthor(ctx context.Context, update models.AuthorUpdate) (models.Author, error) {
	query, args, err := buildUpdateAuthorQuery(update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return r.GetAuthor(ctx, update.ID)
		}
		return models.Author{}, wrapBuildError(err)
	}

	return r.queryAuthor(ctx, "*authorRepository.UpdateAuthor", query, args)
}

// DeleteAuthor removes an author. The books.author_id foreign key is
// ON DELETE RESTRICT, so an author with books yields [ErrAuthorHasBooks].
func (r *authorRepository) DeleteAuthor(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAuthorQuery(id)
	if err != nil {
		return wrapBuildError(err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrAuthorHasBooks
		}
		log.Err(err).Str("func", "*authorRepository.DeleteAuthor").Str("author_id", id).Msg("failed to delete author")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAuthorNotFound
	}

	return nil
}

func (r *authorRepository) queryAuthor(ctx context.Context, funcName, query string, args []any) (models.Author, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Str("class", r.classify(err)).Msg("error querying author")
		return models.Author{}, mapAuthorError(err)
	}

	author, err := scanAuthor(row)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", funcName).Msg("error scanning author")
		}
		return models.Author{}, mapAuthorError(err)
	}

	return author, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row rowScanner) (models.Author, error) {
	var a models.Author
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Biography, &a.BirthDate, &a.Nationality, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func mapAuthorError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAuthorNotFound
	}
	return fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
}
