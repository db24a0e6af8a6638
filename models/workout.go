package models

import "time"

// Workout is a single append-only workout log entry. Entries are never
// updated or deleted; the log is the full history of a user's training.
type Workout struct {
	// Username references the owning User. The relation is 1:N and is
	// not enforced by a foreign key, matching the storage schema.
	Username string `json:"username"`

	// Date is the calendar day of the workout. Only the date part is
	// meaningful; entries are stored in "2006-01-02" form.
	Date time.Time `json:"date"`

	// Exercise is one of the values returned by [Exercises].
	Exercise string `json:"exercise"`

	// Duration of the workout in minutes, always > 0.
	Duration int `json:"duration"`

	// Calories burned, estimated at creation time. Never negative.
	Calories int `json:"calories"`
}

// TableName returns the name of the database table
// associated with the Workout model.
func (w Workout) TableName() string {
	return "workouts"
}

// DateLayout is the storage and display format for workout dates.
const DateLayout = "2006-01-02"

// exercises is the fixed set of supported exercise types.
var exercises = []string{
	"Running",
	"Cycling",
	"Weight Training",
	"Yoga",
	"Swimming",
}

// Exercises returns the supported exercise types in display order.
// The returned slice is a copy and safe to mutate.
func Exercises() []string {
	out := make([]string, len(exercises))
	copy(out, exercises)
	return out
}

// ValidExercise reports whether name is one of the supported exercise types.
func ValidExercise(name string) bool {
	for _, e := range exercises {
		if e == name {
			return true
		}
	}
	return false
}
