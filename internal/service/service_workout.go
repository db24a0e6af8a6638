package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/metrics"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/store"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// workoutService is the concrete implementation of [WorkoutService].
type workoutService struct {
	// workoutRepository is the data-access layer for workout entries.
	workoutRepository store.WorkoutRepository

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewWorkoutService constructs a [WorkoutService] wired to the given
// repository.
func NewWorkoutService(workoutRepository store.WorkoutRepository, logger *logger.Logger) WorkoutService {
	return &workoutService{
		workoutRepository: workoutRepository,
		logger:            logger,
	}
}

// Add records a workout entry for username. The calorie figure is not
// supplied by the caller: it is always derived from the duration, so two
// entries with the same duration always carry the same calories.
//
// Returns the persisted entry or ErrInvalidDataProvided when the exercise
// is unknown or the duration is not positive.
func (w *workoutService) Add(ctx context.Context, username string, date time.Time, exercise string, durationMinutes int) (models.Workout, error) {
	log := logger.FromContext(ctx)

	if !models.ValidExercise(exercise) {
		return models.Workout{}, fmt.Errorf("%w: unknown exercise %q", ErrInvalidDataProvided, exercise)
	}
	if durationMinutes <= 0 {
		return models.Workout{}, fmt.Errorf("%w: duration must be positive", ErrInvalidDataProvided)
	}

	workout := models.Workout{
		Username: username,
		Date:     date,
		Exercise: exercise,
		Duration: durationMinutes,
		Calories: int(math.Round(metrics.PredictCalories(durationMinutes))),
	}

	if err := w.workoutRepository.Append(ctx, workout); err != nil {
		log.Err(err).Str("username", username).Msg("workout append ended with error")
		return models.Workout{}, fmt.Errorf("workout append ended with error: %w", err)
	}

	return workout, nil
}

// History returns all workouts recorded for username, sorted by date in
// chronological order. Entries sharing a date keep their insertion order.
func (w *workoutService) History(ctx context.Context, username string) ([]models.Workout, error) {
	log := logger.FromContext(ctx)

	workouts, err := w.workoutRepository.LoadAll(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("workout history load ended with error")
		return nil, fmt.Errorf("workout history load ended with error: %w", err)
	}

	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date.Before(workouts[j].Date)
	})

	return workouts, nil
}
