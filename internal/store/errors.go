package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a username, email or external id
	// collides with an existing identity.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no identity matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUserHasNoCredential is returned when an identity would be stored
	// with neither a password hash nor an external id.
	ErrUserHasNoCredential = errors.New("user has neither a password nor an external id")

	// ErrInvalidUserData is returned when an identity violates a column
	// constraint other than the credential check, e.g. an unknown role.
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrAuthorNotFound is returned when an author id does not exist, either
	// on direct lookup or as a book's foreign key.
	ErrAuthorNotFound = errors.New("author was not found")

	// ErrAuthorHasBooks is returned when deleting an author still referenced
	// by at least one book.
	ErrAuthorHasBooks = errors.New("author has associated books")

	// ErrBookNotFound is returned when no book matches the given id.
	ErrBookNotFound = errors.New("book was not found")

	// ErrISBNAlreadyExists is returned when a book's ISBN collides with an
	// existing one.
	ErrISBNAlreadyExists = errors.New("isbn already exists")

	// ErrNothingToUpdate is returned when a partial update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnexpectedDB wraps driver errors that map to no domain condition.
	ErrUnexpectedDB = errors.New("unexpected DB error")
)
