package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/config"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/utils"
	"github.com/ccooddoo/Personal-Fitness-Tracker/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver-specific
// pieces repositories need: a squirrel statement builder with the right
// placeholder format and an [ErrorClassifier] for the active driver.
type DB struct {
	*sql.DB
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	dialect    string
	logger     *logger.Logger
}

// Connect opens the database selected by cfg.Driver and verifies the
// connection with a ping.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewConnectSQLite opens (and creates, if necessary) the local SQLite
// database file named by cfg.DSN.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classifier: NewSQLiteErrorClassifier(),
		dialect:    config.DriverSQLite,
		logger:     log,
	}, nil
}

// NewConnectPostgres opens a PostgreSQL connection via the pgx stdlib driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classifier: NewPostgresErrorClassifier(),
		// goose knows the pgx driver by its postgres dialect name
		dialect: "postgres",
		logger:  log,
	}, nil
}

// Migrate idempotently ensures the users and workouts tables exist.
func (db *DB) Migrate() error {
	db.logger.Debug().Str("dialect", db.dialect).Msg("applying migrations")
	return migrations.Migrate(db.DB, db.dialect)
}

// repoLogger returns the context-scoped logger, tagged with the session
// username when the context carries one.
func repoLogger(ctx context.Context) *logger.Logger {
	log := logger.FromContext(ctx)
	if username, ok := utils.GetUsernameFromContext(ctx); ok {
		return &logger.Logger{Logger: log.With().Str("session_username", username).Logger()}
	}
	return log
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
