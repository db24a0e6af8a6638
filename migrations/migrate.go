// Package migrations holds the embedded goose SQL migrations that create
// the users and workouts tables. Migrate is idempotent: running it against
// an already migrated database is a no-op.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db. The dialect must be a
// goose dialect name matching the open connection ("sqlite3" or
// "postgres"); the migration SQL itself is kept to the subset both
// engines accept.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
