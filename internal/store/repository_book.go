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

// bookRepository is the PostgreSQL-backed implementation of
// [BookRepository]. Reads join "authors" to fill the author summary.
type bookRepository struct {
	*DB
	logger      *logger.Logger
	idGenerator *utils.UUIDGenerator
}

// NewBookRepository constructs a [BookRepository].
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:          db,
		logger:      logger,
		idGenerator: utils.NewUUIDGenerator(),
	}
}

func (r *bookRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBooksQuery()
	if err != nil {
		return nil, wrapBuildError(err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 32)
	for rows.Next() {
		book, scanErr := scanBook(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*bookRepository.ListBooks").Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

func (r *bookRepository) GetBook(ctx context.Context, id string) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookQuery(id)
	if err != nil {
		return models.Book{}, wrapBuildError(err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.GetBook").Msg("error querying book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}

	book, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.GetBook").Msg("error scanning book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// CreateBook inserts a book and returns it re-read with its author summary.
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if book.ID == "" {
		book.ID = r.idGenerator.Generate()
	}

	query, args, err := buildInsertBookQuery(book)
	if err != nil {
		return models.Book{}, wrapBuildError(err)
	}

	id, err := r.writeBook(ctx, "*bookRepository.CreateBook", query, args)
	if err != nil {
		return models.Book{}, err
	}

	return r.GetBook(ctx, id)
}

// UpdateBook applies a partial update and returns the updated book.
func (r *bookRepository) UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error) {
	query, args, err := buildUpdateBookQuery(update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return r.GetBook(ctx, update.ID)
		}
		return models.Book{}, wrapBuildError(err)
	}

	id, err := r.writeBook(ctx, "*bookRepository.UpdateBook", query, args)
	if err != nil {
		return models.Book{}, err
	}

	return r.GetBook(ctx, id)
}

func (r *bookRepository) DeleteBook(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookQuery(id)
	if err != nil {
		return wrapBuildError(err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Str("book_id", id).Msg("failed to delete book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// writeBook runs an INSERT/UPDATE ... RETURNING id statement.
func (r *bookRepository) writeBook(ctx context.Context, funcName, query string, args []any) (string, error) {
	log := logger.FromContext(ctx)

	var id string
	row := r.DB.QueryRowContext(ctx, query, args...)
	err := row.Err()
	if err == nil {
		err = row.Scan(&id)
	}
	if err == nil {
		return id, nil
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrBookNotFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		return "", ErrISBNAlreadyExists
	case postgresError(err) == pgerrcode.ForeignKeyViolation:
		return "", ErrAuthorNotFound
	}

	log.Err(err).Str("func", funcName).Str("class", r.classify(err)).Str("constraint", postgresConstraint(err)).Msg("error writing book")
	return "", fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
}

func scanBook(row rowScanner) (models.Book, error) {
	var (
		b                   models.Book
		firstName, lastName sql.NullString
	)

	err := row.Scan(&b.ID, &b.Title, &b.AuthorID, &firstName, &lastName, &b.ISBN, &b.PublishYear,
		&b.Genre, &b.Description, &b.PageCount, &b.Language, &b.Publisher, &b.Available,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Book{}, err
	}

	if firstName.Valid || lastName.Valid {
		b.Author = &models.AuthorSummary{
			ID:        b.AuthorID,
			FirstName: firstName.String,
			LastName:  lastName.String,
		}
	}

	return b, nil
}
