package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassifier.Classify].
// It tells repositories whether a failed database operation hit a unique
// constraint, may be retried, or should be abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations other than uniqueness, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a locked database).
	Retryable

	// UniqueViolation indicates the operation violated a unique or primary
	// key constraint. Repositories map this to [ErrUsernameTaken].
	UniqueViolation
)

// ErrorClassifier maps driver-level errors to an [ErrorClassification] so
// that repositories stay independent of the configured database driver.
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. It attempts to unwrap err as a
// *pgconn.PgError and maps its code. If err is nil or is not a PostgreSQL
// driver error, [NonRetryable] is returned.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation

	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40 — transaction rollback
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return Retryable
	}

	return NonRetryable
}

// SQLiteErrorClassifier implements [ErrorClassifier] for the mattn/go-sqlite3
// driver, the default backend.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier] for SQLite error codes.
//
// Unique and primary key constraint violations map to [UniqueViolation];
// SQLITE_BUSY and SQLITE_LOCKED map to [Retryable]; everything else is
// [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
