package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// workoutRepository is the SQL-backed implementation of [WorkoutRepository].
// The workouts table is append-only: rows are inserted once and never
// updated or deleted.
type workoutRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWorkoutRepository constructs a [WorkoutRepository] backed by the
// provided database connection and logger.
func NewWorkoutRepository(db *DB, logger *logger.Logger) WorkoutRepository {
	logger.Debug().Msg("creating workout repository")
	return &workoutRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts one workout entry. The date is persisted in
// [models.DateLayout] form.
func (r *workoutRepository) Append(ctx context.Context, workout models.Workout) error {
	log := repoLogger(ctx)

	query, args, err := r.db.appendWorkoutQuery(workout)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.Append").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*workoutRepository.Append").
			Str("username", workout.Username).
			Msg("failed to execute insert for workout entry")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// LoadAll returns every workout entry for username in storage scan order.
func (r *workoutRepository) LoadAll(ctx context.Context, username string) ([]models.Workout, error) {
	log := repoLogger(ctx)

	query, args, err := r.db.loadAllWorkoutsQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.LoadAll").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*workoutRepository.LoadAll").
			Str("username", username).
			Msg("failed to execute query for workout history")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout

	for rows.Next() {
		var (
			workout models.Workout
			rawDate string
		)

		if err = rows.Scan(&workout.Username, &rawDate, &workout.Exercise, &workout.Duration, &workout.Calories); err != nil {
			log.Err(err).Str("func", "*workoutRepository.LoadAll").Msg("failed to scan workout row")
			return nil, fmt.Errorf("failed to scan workout row: %w", err)
		}

		workout.Date, err = time.Parse(models.DateLayout, rawDate)
		if err != nil {
			log.Err(err).
				Str("func", "*workoutRepository.LoadAll").
				Str("date", rawDate).
				Msg("stored workout date is malformed")
			return nil, fmt.Errorf("stored workout date %q is malformed: %w", rawDate, err)
		}

		workouts = append(workouts, workout)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*workoutRepository.LoadAll").Msg("row iteration failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return workouts, nil
}
