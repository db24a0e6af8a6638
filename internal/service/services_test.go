package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/config"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/metrics"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/store"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// ─────────────────────────────────────────────
// In-memory repositories
// ─────────────────────────────────────────────

type memoryUserRepository struct {
	users map[string]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[string]models.User{}}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) error {
	if _, exists := m.users[user.Username]; exists {
		return store.ErrUsernameTaken
	}
	m.users[user.Username] = user
	return nil
}

func (m *memoryUserRepository) FindUser(_ context.Context, username string) (models.User, error) {
	user, exists := m.users[username]
	if !exists {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryUserRepository) FindPasswordHash(_ context.Context, username string) (string, error) {
	user, exists := m.users[username]
	if !exists {
		return "", store.ErrUserNotFound
	}
	return user.PasswordHash, nil
}

type memoryWorkoutRepository struct {
	workouts []models.Workout
}

func (m *memoryWorkoutRepository) Append(_ context.Context, workout models.Workout) error {
	m.workouts = append(m.workouts, workout)
	return nil
}

func (m *memoryWorkoutRepository) LoadAll(_ context.Context, username string) ([]models.Workout, error) {
	var result []models.Workout
	for _, workout := range m.workouts {
		if workout.Username == username {
			result = append(result, workout)
		}
	}
	return result, nil
}

// ─────────────────────────────────────────────
// End to end over in-memory storage
// ─────────────────────────────────────────────

// TestServices_FullUserJourney walks the whole happy path: register,
// login, log a few workouts, and read back the aggregated progress.
func TestServices_FullUserJourney(t *testing.T) {
	ctx := context.Background()
	userRepo := newMemoryUserRepository()
	workoutRepo := &memoryWorkoutRepository{}

	repos := &store.Repositories{Users: userRepo, Workouts: workoutRepo}
	services := NewServices(repos, config.App{DefaultCalorieGoal: 2000, BcryptCost: 4}, logger.Nop())

	// register
	user, err := services.Register(ctx, models.Registration{
		Username: "alice",
		Age:      30,
		Height:   170,
		Weight:   70,
		Password: "pw",
	})
	require.NoError(t, err)
	assert.InDelta(t, 24.22, user.BMI, 1e-9)

	// second registration under the same name is rejected
	_, err = services.Register(ctx, models.Registration{
		Username: "alice", Age: 40, Height: 180, Weight: 80, Password: "other",
	})
	assert.True(t, errors.Is(err, ErrDuplicateUser))

	// login
	require.NoError(t, services.Login(ctx, "alice", "pw"))
	assert.True(t, errors.Is(services.Login(ctx, "alice", "wrong"), ErrInvalidCredentials))

	// the stored credential is a hash, not the plaintext
	storedHash, err := userRepo.FindPasswordHash(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", storedHash)

	// log three workouts
	for _, entry := range []struct {
		date     string
		exercise string
		duration int
	}{
		{"2026-08-24", "Running", 30},
		{"2026-08-25", "Cycling", 40},
		{"2026-08-26", "Swimming", 50},
	} {
		_, err = services.Add(ctx, "alice", day(entry.date), entry.exercise, entry.duration)
		require.NoError(t, err)
	}

	history, err := services.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []int{300, 400, 500}, []int{history[0].Calories, history[1].Calories, history[2].Calories})

	report := metrics.Aggregate(history)
	assert.Equal(t, 3, report.TotalWorkouts)
	assert.Equal(t, 1200, report.TotalCalories)
	assert.InDelta(t, 400.0, report.AvgCalories, 1e-9)

	ratio, err := metrics.ProgressRatio(report.TotalCalories, 2000)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, ratio, 1e-9)

	// another user sees an empty history
	history, err = services.History(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, history)
}
