package store

import (
	"database/sql"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/migrations"
)

// DB wraps the shared connection pool together with the error classifier
// used to tag failed calls in the logs.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened pool. Used by tests and by callers that
// manage the connection themselves.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// classify reports the retry classification of err for logging.
func (db *DB) classify(err error) string {
	if db.errorClassificator == nil {
		return "unknown"
	}
	if db.errorClassificator.Classify(err) == Retryable {
		return "retryable"
	}
	return "non-retryable"
}
