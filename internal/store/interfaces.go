package store

import (
	"context"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	// CreateUser persists a new user row. Returns ErrUsernameTaken when
	// the username already exists; the original row is left unchanged.
	CreateUser(ctx context.Context, user models.User) error

	// FindUser returns the full stored profile (including the password
	// hash) or ErrUserNotFound.
	FindUser(ctx context.Context, username string) (models.User, error)

	// FindPasswordHash returns the stored bcrypt hash for username or
	// ErrUserNotFound.
	FindPasswordHash(ctx context.Context, username string) (string, error)
}

// WorkoutRepository is the data-access contract for the append-only
// workouts table.
type WorkoutRepository interface {
	// Append inserts one workout entry.
	Append(ctx context.Context, workout models.Workout) error

	// LoadAll returns all entries for a user in storage scan order.
	// The default SQLite backend yields insertion order; no ordering is
	// guaranteed elsewhere. Callers needing a chronological view must
	// sort by date themselves.
	LoadAll(ctx context.Context, username string) ([]models.Workout, error)
}

// Repositories bundles all repositories sharing one database handle.
type Repositories struct {
	Users    UserRepository
	Workouts WorkoutRepository
}

// NewRepositories wires all repositories to db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db, log),
		Workouts: NewWorkoutRepository(db, log),
	}
}
