package store

import (
	"database/sql"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/migrations"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. The PostgreSQL implementation inspects driver error codes; the
// SQLite connection leaves it nil and callers treat every failure as final.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigrateClient applies the embedded SQLite schema for the local replica.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// MigrateServer applies the embedded PostgreSQL schema for the
// authoritative store.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

// Retryable reports whether err was classified as transient by the
// connection's error classificator.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
