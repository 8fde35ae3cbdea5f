package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/arenacast/backend/internal/config"
	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/migrations"
)

type DB struct {
	*sql.DB
	engine          string
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect())
}

// dialect maps the configured engine to the goose dialect / driver name the
// connection was opened with.
func (db *DB) dialect() string {
	if db.engine == config.EngineSQLite {
		return "sqlite3"
	}
	return "pgx"
}

// builder returns a statement builder with the placeholder format the
// configured engine expects ($1 for postgres, ? for sqlite).
func (db *DB) builder() sq.StatementBuilderType {
	if db.engine == config.EngineSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
