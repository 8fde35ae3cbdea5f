package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClass is the result type returned by [ErrorClassifier.Classify].
// It tags a failed database operation with its domain-meaningful class so
// that repositories inspect a single classification instead of scattering
// driver-specific code comparisons.
type ErrorClass int

const (
	// ClassOther is the default classification: an opaque operational
	// failure with no domain meaning.
	ClassOther ErrorClass = iota

	// ClassUniqueViolation indicates that the operation was rejected by a
	// storage-level uniqueness constraint. The storage layer is the sole
	// arbiter of uniqueness; this class is how its verdict surfaces.
	ClassUniqueViolation
)

// ErrorClassifier maps driver-level errors to an [ErrorClass]. Each engine
// provides its own implementation since constraint violations are reported
// through engine-specific error types.
type ErrorClassifier interface {
	Classify(err error) ErrorClass
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. Class 23505 (unique_violation) maps
// to [ClassUniqueViolation]; everything else, including nil, is [ClassOther].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	if err == nil {
		return ClassOther
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ClassUniqueViolation
	}

	return ClassOther
}

// SQLiteErrorClassifier implements [ErrorClassifier] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier]. SQLITE_CONSTRAINT_UNIQUE and
// SQLITE_CONSTRAINT_PRIMARYKEY both map to [ClassUniqueViolation]; the
// composite natural keys in this schema are primary keys, so the engine
// reports their violation under the primary-key extended code.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClass {
	if err == nil {
		return ClassOther
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ClassUniqueViolation
		}
	}

	return ClassOther
}
