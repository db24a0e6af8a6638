package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// Query constructors. All statements are built with squirrel so values are
// always bound as parameters, never concatenated into the SQL text, and the
// placeholder format follows the active driver.

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("username", "age", "height", "weight", "password", "bmi").
		Values(user.Username, user.Age, user.Height, user.Weight, user.PasswordHash, user.BMI).
		ToSql()
}

func (db *DB) findUserQuery(username string) (string, []any, error) {
	return db.builder.
		Select("username", "age", "height", "weight", "password", "bmi").
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) findPasswordHashQuery(username string) (string, []any, error) {
	return db.builder.
		Select("password").
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) appendWorkoutQuery(workout models.Workout) (string, []any, error) {
	return db.builder.
		Insert(workout.TableName()).
		Columns("username", "date", "exercise", "duration", "calories").
		Values(
			workout.Username,
			workout.Date.Format(models.DateLayout),
			workout.Exercise,
			workout.Duration,
			workout.Calories,
		).
		ToSql()
}

func (db *DB) loadAllWorkoutsQuery(username string) (string, []any, error) {
	// no ORDER BY: rows come back in scan order, which the default SQLite
	// backend delivers as insertion order for this append-only table.
	// Scan order is not guaranteed elsewhere, so callers needing
	// chronology sort by date themselves.
	return db.builder.
		Select("username", "date", "exercise", "duration", "calories").
		From(models.Workout{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}
