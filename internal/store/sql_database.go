package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"stockroom/internal/logger"
	"stockroom/migrations"
)

// DB wraps the raw connection handle with the statement builder configured
// for the active engine's placeholder format and the engine-specific
// unique-violation detector.
type DB struct {
	*sql.DB

	builder         sq.StatementBuilderType
	engine          string
	uniqueViolation func(error) bool
	logger          *logger.Logger
}

// Builder returns the squirrel statement builder configured for this
// connection's placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Migrate applies all pending schema migrations for the active engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.engine)
}

// IsUniqueViolation reports whether err is the engine's unique-constraint
// violation.
func (db *DB) IsUniqueViolation(err error) bool {
	if db.uniqueViolation == nil {
		return false
	}
	return db.uniqueViolation(err)
}
