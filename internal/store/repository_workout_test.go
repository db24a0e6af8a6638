package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

func newTestWorkoutRepo(t *testing.T) (*workoutRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, mockDB := newTestDB(t)
	repo := &workoutRepository{db: db, logger: logger.Nop()}
	return repo, mock, func() { mockDB.Close() }
}

func TestAppend_Success(t *testing.T) {
	repo, mock, closeDB := newTestWorkoutRepo(t)
	defer closeDB()

	workout := models.Workout{
		Username: "alice",
		Date:     time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		Exercise: "Running",
		Duration: 30,
		Calories: 300,
	}

	mock.ExpectExec("INSERT INTO workouts").
		WithArgs("alice", "2026-08-24", "Running", 30, 300).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Append(context.Background(), workout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAppend_DBError(t *testing.T) {
	repo, mock, closeDB := newTestWorkoutRepo(t)
	defer closeDB()

	mock.ExpectExec("INSERT INTO workouts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Append(context.Background(), models.Workout{Username: "alice", Exercise: "Yoga", Duration: 20})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestLoadAll_InsertionOrderPreserved(t *testing.T) {
	repo, mock, closeDB := newTestWorkoutRepo(t)
	defer closeDB()

	rows := sqlmock.
		NewRows([]string{"username", "date", "exercise", "duration", "calories"}).
		AddRow("alice", "2026-08-24", "Running", 30, 300).
		AddRow("alice", "2026-08-10", "Yoga", 40, 400).
		AddRow("alice", "2026-08-17", "Swimming", 50, 500)

	mock.ExpectQuery("SELECT username, date, exercise, duration, calories FROM workouts").
		WithArgs("alice").
		WillReturnRows(rows)

	workouts, err := repo.LoadAll(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(workouts) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(workouts))
	}

	// the store reads in insertion order, not date order
	wantDates := []string{"2026-08-24", "2026-08-10", "2026-08-17"}
	for i, want := range wantDates {
		if got := workouts[i].Date.Format(models.DateLayout); got != want {
			t.Errorf("workout %d: expected date %s, got %s", i, want, got)
		}
	}
}

func TestLoadAll_EmptyHistory(t *testing.T) {
	repo, mock, closeDB := newTestWorkoutRepo(t)
	defer closeDB()

	mock.ExpectQuery("SELECT username, date, exercise, duration, calories FROM workouts").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"username", "date", "exercise", "duration", "calories"}))

	workouts, err := repo.LoadAll(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workouts) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(workouts))
	}
}

func TestLoadAll_MalformedDate(t *testing.T) {
	repo, mock, closeDB := newTestWorkoutRepo(t)
	defer closeDB()

	rows := sqlmock.
		NewRows([]string{"username", "date", "exercise", "duration", "calories"}).
		AddRow("alice", "24/08/2026", "Running", 30, 300)

	mock.ExpectQuery("SELECT username, date, exercise, duration, calories FROM workouts").
		WithArgs("alice").
		WillReturnRows(rows)

	_, err := repo.LoadAll(context.Background(), "alice")
	if err == nil || !strings.Contains(err.Error(), "malformed") {
		t.Fatalf("expected malformed date error, got %v", err)
	}
}
