package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [repoLogger] for
// structured, interaction-level tracing of database access. Password hashes
// pass through this layer but are never written to the log.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user row.
//
// Error handling:
//   - unique/primary key violation (either driver) → [ErrUsernameTaken];
//     the existing row is untouched.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := repoLogger(ctx)

	query, args, err := r.db.insertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classifier.Classify(err) == UniqueViolation {
			log.Warn().Str("username", user.Username).Msg("username already exists")
			return ErrUsernameTaken
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error executing insert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindUser retrieves the full stored profile for username.
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUser(ctx context.Context, username string) (models.User, error) {
	log := repoLogger(ctx)

	query, args, err := r.db.findUserQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUser").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&user.Username, &user.Age, &user.Height, &user.Weight, &user.PasswordHash, &user.BMI); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindPasswordHash returns only the stored password hash for username.
// The auth service uses it during login so the rest of the profile never
// leaves the store on the failure path.
func (r *userRepository) FindPasswordHash(ctx context.Context, username string) (string, error) {
	log := repoLogger(ctx)

	query, args, err := r.db.findPasswordHashQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindPasswordHash").Msg("error building select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var hash string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindPasswordHash").Msg("error: scanning error")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return hash, nil
}
