package store

import (
	"database/sql"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/migrations"
)

// DB wraps the standard [sql.DB] connection with the application logger and
// an optional error classificator for retry decisions.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigrateServer applies the embedded feed-server (PostgreSQL) migrations.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

// MigrateClient applies the embedded local-replica (SQLite) migrations.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}
