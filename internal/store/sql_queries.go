package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-library-api/models"
	sq "github.com/Masterminds/squirrel"
)

// psql is the statement builder shared by all repositories. PostgreSQL
// expects $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{
		"id", "username", "email", "external_id", "role", "created_at", "updated_at",
	}
	userColumnsWithPassword = append(append([]string{}, userColumns...), "password_hash")

	authorColumns = []string{
		"id", "first_name", "last_name", "biography", "birth_date", "nationality", "created_at", "updated_at",
	}

	bookColumns = []string{
		"b.id", "b.title", "b.author_id", "a.first_name", "a.last_name", "b.isbn", "b.publish_year",
		"b.genre", "b.description", "b.page_count", "b.language", "b.publisher", "b.available",
		"b.created_at", "b.updated_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("id", "username", "email", "password_hash", "external_id", "role").
		Values(user.ID, user.Username, user.Email, nullIfEmpty(user.PasswordHash), nullIfEmpty(user.ExternalID), string(user.Role)).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserQuery(where sq.Sqlizer, withPassword bool) (string, []any, error) {
	columns := userColumns
	if withPassword {
		columns = userColumnsWithPassword
	}

	return psql.Select(columns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
}

func buildLinkExternalIDQuery(userID, externalID string) (string, []any, error) {
	return psql.Update("users").
		Set("external_id", externalID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix(returning(userColumns)).
		ToSql()
}

// buildSaveUserQuery updates the mutable identity fields. The password hash
// and external id are written only when set, so saving an identity loaded by
// a default read leaves them untouched.
func buildSaveUserQuery(user models.User) (string, []any, error) {
	q := psql.Update("users").
		Set("username", user.Username).
		Set("email", user.Email).
		Set("role", string(user.Role)).
		Set("updated_at", sq.Expr("NOW()"))

	if user.PasswordHash != "" {
		q = q.Set("password_hash", user.PasswordHash)
	}
	if user.ExternalID != "" {
		q = q.Set("external_id", user.ExternalID)
	}

	return q.Where(sq.Eq{"id": user.ID}).
		Suffix(returning(userColumns)).
		ToSql()
}

// ── authors ───────────────────────────────────────────────────────────────────

func buildSelectAuthorsQuery() (string, []any, error) {
	return psql.Select(authorColumns...).
		From("authors").
		OrderBy("last_name", "first_name").
		ToSql()
}

func buildSelectAuthorQuery(id string) (string, []any, error) {
	return psql.Select(authorColumns...).
		From("authors").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertAuthorQuery(author models.Author) (string, []any, error) {
	return psql.Insert("authors").
		Columns("id", "first_name", "last_name", "biography", "birth_date", "nationality").
		Values(author.ID, author.FirstName, author.LastName, author.Biography, author.BirthDate, author.Nationality).
		Suffix(returning(authorColumns)).
		ToSql()
}

func buildUpdateAuthorQuery(update models.AuthorUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	q := psql.Update("authors")
	if update.FirstName != nil {
		q = q.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		q = q.Set("last_name", *update.LastName)
	}
	if update.Biography != nil {
		q = q.Set("biography", *update.Biography)
	}
	if update.BirthDate != nil {
		q = q.Set("birth_date", *update.BirthDate)
	}
	if update.Nationality != nil {
		q = q.Set("nationality", *update.Nationality)
	}

	return q.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(authorColumns)).
		ToSql()
}

func buildDeleteAuthorQuery(id string) (string, []any, error) {
	return psql.Delete("authors").Where(sq.Eq{"id": id}).ToSql()
}

// ── books ─────────────────────────────────────────────────────────────────────

func selectBooks() sq.SelectBuilder {
	return psql.Select(bookColumns...).
		From("books b").
		LeftJoin("authors a ON a.id = b.author_id")
}

func buildSelectBooksQuery() (string, []any, error) {
	return selectBooks().OrderBy("b.created_at DESC").ToSql()
}

func buildSelectBookQuery(id string) (string, []any, error) {
	return selectBooks().Where(sq.Eq{"b.id": id}).ToSql()
}

func buildInsertBookQuery(book models.Book) (string, []any, error) {
	return psql.Insert("books").
		Columns("id", "title", "author_id", "isbn", "publish_year", "genre", "description",
			"page_count", "language", "publisher", "available").
		Values(book.ID, book.Title, book.AuthorID, book.ISBN, book.PublishYear, book.Genre, book.Description,
			book.PageCount, book.Language, book.Publisher, book.Available).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateBookQuery(update models.BookUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	set := map[string]any{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Author != nil {
		set["author_id"] = *update.Author
	}
	if update.ISBN != nil {
		set["isbn"] = *update.ISBN
	}
	if update.PublishYear != nil {
		set["publish_year"] = *update.PublishYear
	}
	if update.Genre != nil {
		set["genre"] = *update.Genre
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.PageCount != nil {
		set["page_count"] = *update.PageCount
	}
	if update.Language != nil {
		set["language"] = *update.Language
	}
	if update.Publisher != nil {
		set["publisher"] = *update.Publisher
	}
	if update.Available != nil {
		set["available"] = *update.Available
	}
	set["updated_at"] = sq.Expr("NOW()")

	return psql.Update("books").
		SetMap(set).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id").
		ToSql()
}

func buildDeleteBookQuery(id string) (string, []any, error) {
	return psql.Delete("books").Where(sq.Eq{"id": id}).ToSql()
}

func wrapBuildError(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
