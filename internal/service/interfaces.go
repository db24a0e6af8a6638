package service

import (
	"context"
	"time"

	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// AuthService registers and authenticates users against the credential store.
type AuthService interface {
	// Register validates the registration input, computes the BMI,
	// hashes the password and persists the new account.
	// The returned user never carries the password hash.
	Register(ctx context.Context, reg models.Registration) (models.User, error)

	// Login verifies the password against the stored hash. The error is
	// ErrInvalidCredentials for both unknown users and wrong passwords.
	Login(ctx context.Context, username, password string) error

	// Profile returns the stored profile for the dashboard.
	// The returned user never carries the password hash.
	Profile(ctx context.Context, username string) (models.User, error)
}

// WorkoutService appends to and reads from a user's workout log.
type WorkoutService interface {
	// Add validates and persists one workout entry, estimating its
	// calories from the duration at creation time.
	Add(ctx context.Context, username string, date time.Time, exercise string, durationMinutes int) (models.Workout, error)

	// History returns a user's full workout log sorted chronologically.
	History(ctx context.Context, username string) ([]models.Workout, error)
}
