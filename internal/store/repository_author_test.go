package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthorRepo(t *testing.T) (*authorRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return &authorRepository{DB: NewDB(db, l), logger: l, idGenerator: utils.NewUUIDGenerator()}, mock
}

func authorRow(rows *sqlmock.Rows, id string, now time.Time) *sqlmock.Rows {
	return rows.AddRow(id, "Jorge Luis", "Borges", "Argentine writer", time.Date(1899, 8, 24, 0, 0, 0, 0, time.UTC), "Argentine", now, now)
}

func TestListAuthors(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(authorColumns)
	authorRow(rows, "a-1", now)
	authorRow(rows, "a-2", now)
	mock.ExpectQuery("SELECT .* FROM authors ORDER BY last_name, first_name").WillReturnRows(rows)

	authors, err := repo.ListAuthors(context.Background())

	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "1899-08-24", authors[0].BirthDate.String())
}

func TestListAuthors_QueryError(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("SELECT .* FROM authors").WillReturnError(errors.New("down"))

	_, err := repo.ListAuthors(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListAuthors_ScanError(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("SELECT .* FROM authors").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a-1"))

	_, err := repo.ListAuthors(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestGetAuthor_NotFound(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery(`FROM authors WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAuthor(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestCreateAuthor(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)
	now := time.Now()
	birth := models.NewDate(time.Date(1899, 8, 24, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery("INSERT INTO authors").
		WithArgs(sqlmock.AnyArg(), "Jorge Luis", "Borges", "Argentine writer", sqlmock.AnyArg(), "Argentine").
		WillReturnRows(authorRow(sqlmock.NewRows(authorColumns), "a-1", now))

	author, err := repo.CreateAuthor(context.Background(), models.Author{
		FirstName:   "Jorge Luis",
		LastName:    "Borges",
		Biography:   "Argentine writer",
		BirthDate:   birth,
		Nationality: "Argentine",
	})

	require.NoError(t, err)
	assert.Equal(t, "a-1", author.ID)
	assert.Equal(t, birth, author.BirthDate)
}

func TestUpdateAuthor(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)
	now := time.Now()
	nationality := "Argentine"

	mock.ExpectQuery(`UPDATE authors SET nationality = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("Argentine", "a-1").
		WillReturnRows(authorRow(sqlmock.NewRows(authorColumns), "a-1", now))

	author, err := repo.UpdateAuthor(context.Background(), models.AuthorUpdate{ID: "a-1", Nationality: &nationality})

	require.NoError(t, err)
	assert.Equal(t, "Argentine", author.Nationality)
}

func TestUpdateAuthor_EmptyUpdateReadsCurrent(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM authors WHERE id = \$1`).
		WithArgs("a-1").
		WillReturnRows(authorRow(sqlmock.NewRows(authorColumns), "a-1", now))

	_, err := repo.UpdateAuthor(context.Background(), models.AuthorUpdate{ID: "a-1"})
	require.NoError(t, err)
}

func TestUpdateAuthor_NotFound(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)
	name := "X"

	mock.ExpectQuery("UPDATE authors").WillReturnRows(sqlmock.NewRows(authorColumns))

	_, err := repo.UpdateAuthor(context.Background(), models.AuthorUpdate{ID: "missing", FirstName: &name})
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestDeleteAuthor(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectExec(`DELETE FROM authors WHERE id = \$1`).
		WithArgs("a-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteAuthor(context.Background(), "a-1"))
}

func TestDeleteAuthor_NotFound(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectExec("DELETE FROM authors").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteAuthor(context.Background(), "missing"), ErrAuthorNotFound)
}

func TestDeleteAuthor_HasBooks(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectExec("DELETE FROM authors").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	assert.ErrorIs(t, repo.DeleteAuthor(context.Background(), "a-1"), ErrAuthorHasBooks)
}
