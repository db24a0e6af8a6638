package metrics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// ErrInvalidGoal is returned by [ProgressRatio] when the calorie goal is
// not positive. Callers keep their previous goal value on this error.
var ErrInvalidGoal = errors.New("calorie goal must be positive")

// weekdayNames is the fixed Monday-first display order of the weekday
// histogram.
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeeklyCalories is one point of the weekly burn series.
type WeeklyCalories struct {
	// Week is an ISO year-week label such as "2026-W35".
	Week     string
	Calories int
}

// WeekdayCount is one bucket of the weekday histogram.
type WeekdayCount struct {
	Day   string
	Count int
}

// ExerciseCount is one slice of the workout distribution.
type ExerciseCount struct {
	Exercise string
	Count    int
}

// ProgressReport is the aggregate view over a user's full workout history.
// A report over an empty history is the zero value plus a zero-filled
// weekday histogram; callers must check [ProgressReport.IsEmpty] before
// rendering averages or ratios.
type ProgressReport struct {
	TotalWorkouts int
	TotalCalories int

	// AvgCalories is the mean calories per entry rounded to two decimals,
	// 0 for an empty history.
	AvgCalories float64

	// Weekly holds calorie sums keyed by ISO year-week, in chronological
	// order.
	Weekly []WeeklyCalories

	// Weekdays always has exactly seven buckets, Monday through Sunday,
	// zero-filled, and their counts sum to TotalWorkouts.
	Weekdays []WeekdayCount

	// Distribution counts entries per exercise type, most frequent
	// first, ties in display order. Only exercises present in the
	// history appear; the counts sum to TotalWorkouts.
	Distribution []ExerciseCount
}

// IsEmpty reports whether the underlying history had no entries.
func (r ProgressReport) IsEmpty() bool {
	return r.TotalWorkouts == 0
}

// Aggregate computes the full progress report for a workout history.
// The input order does not matter; entries are sorted by date internally
// so the weekly series comes out chronological.
func Aggregate(entries []models.Workout) ProgressReport {
	report := ProgressReport{
		Weekdays: emptyHistogram(),
	}

	if len(entries) == 0 {
		return report
	}

	sorted := make([]models.Workout, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	weeklyIndex := make(map[string]int)
	exerciseCounts := make(map[string]int)

	for _, entry := range sorted {
		report.TotalWorkouts++
		report.TotalCalories += entry.Calories

		week := weekLabel(entry)
		if i, ok := weeklyIndex[week]; ok {
			report.Weekly[i].Calories += entry.Calories
		} else {
			weeklyIndex[week] = len(report.Weekly)
			report.Weekly = append(report.Weekly, WeeklyCalories{Week: week, Calories: entry.Calories})
		}

		report.Weekdays[mondayFirstIndex(entry)].Count++
		exerciseCounts[entry.Exercise]++
	}

	report.AvgCalories = Round2(float64(report.TotalCalories) / float64(report.TotalWorkouts))
	report.Distribution = distributionSeries(exerciseCounts)

	return report
}

// distributionSeries orders the per-exercise counts most frequent first.
// Ties keep the canonical display order; exercise names outside the
// canonical set (possible in data written by older builds) sort after it
// alphabetically so their entries stay visible.
func distributionSeries(counts map[string]int) []ExerciseCount {
	series := make([]ExerciseCount, 0, len(counts))
	for _, exercise := range models.Exercises() {
		if n, ok := counts[exercise]; ok {
			series = append(series, ExerciseCount{Exercise: exercise, Count: n})
			delete(counts, exercise)
		}
	}

	if len(counts) > 0 {
		rest := make([]string, 0, len(counts))
		for exercise := range counts {
			rest = append(rest, exercise)
		}
		sort.Strings(rest)
		for _, exercise := range rest {
			series = append(series, ExerciseCount{Exercise: exercise, Count: counts[exercise]})
		}
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Count > series[j].Count
	})
	return series
}

// ProgressRatio returns the share of the calorie goal already burned,
// capped at 1.0. A non-positive goal is rejected with [ErrInvalidGoal].
func ProgressRatio(totalCalories, goal int) (float64, error) {
	if goal <= 0 {
		return 0, ErrInvalidGoal
	}

	ratio := float64(totalCalories) / float64(goal)
	if ratio > 1.0 {
		ratio = 1.0
	}
	return ratio, nil
}

func emptyHistogram() []WeekdayCount {
	buckets := make([]WeekdayCount, len(weekdayNames))
	for i, day := range weekdayNames {
		buckets[i] = WeekdayCount{Day: day}
	}
	return buckets
}

func weekLabel(entry models.Workout) string {
	year, week := entry.Date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// mondayFirstIndex maps time.Weekday (Sunday = 0) onto the Monday-first
// histogram order.
func mondayFirstIndex(entry models.Workout) int {
	return (int(entry.Date.Weekday()) + 6) % 7
}
