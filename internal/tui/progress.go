package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/metrics"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/service"
)

// goalStep is the increment applied to the calorie goal by ↑/↓.
const goalStep = 100

// ProgressModel is the progress page: weekly, per-exercise, and weekday
// breakdowns of the workout history plus a calorie goal tracker. The goal field is
// editable; an invalid value keeps the previous goal.
type ProgressModel struct {
	ctx      context.Context
	workouts service.WorkoutService
	session  Session

	report    metrics.ProgressReport
	goal      int
	goalInput textinput.Model
	goalBar   progress.Model
	loading   bool
	errMsg    string
}

func NewProgressModel(ctx context.Context, workouts service.WorkoutService, session Session, defaultGoal int) *ProgressModel {
	goalInput := textinput.New()
	goalInput.Placeholder = "kcal"
	goalInput.CharLimit = 7
	goalInput.Width = 10
	goalInput.SetValue(strconv.Itoa(defaultGoal))
	goalInput.Focus()

	return &ProgressModel{
		ctx:       ctx,
		workouts:  workouts,
		session:   session,
		goal:      defaultGoal,
		goalInput: goalInput,
		goalBar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		loading:   true,
	}
}

// Init implements [tea.Model]. Kicks off the async history load.
func (m *ProgressModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoadHistory()
}

// Update implements [tea.Model]. Handled messages:
//   - [historyLoadedMsg] — aggregates the loaded history into the report.
//   - esc               — navigates back to the main menu.
//   - enter             — applies the goal field; an unparsable or
//     non-positive value keeps the previous goal and shows an error.
//   - up / down         — steps the goal by ±100 kcal.
//
// All other key events are forwarded to the goal input widget.
func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(historyLoadedMsg); ok {
		m.loading = false
		if loaded.err != nil {
			m.errMsg = humanizeError(loaded.err)
			return m, nil
		}
		m.errMsg = ""
		m.report = metrics.Aggregate(loaded.workouts)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "home"} }
		case "enter":
			goal, err := strconv.Atoi(strings.TrimSpace(m.goalInput.Value()))
			if err != nil || goal <= 0 {
				m.errMsg = "Goal must be a positive number of calories"
				m.goalInput.SetValue(strconv.Itoa(m.goal))
				return m, nil
			}
			m.errMsg = ""
			m.goal = goal
			return m, nil
		case "up":
			m.errMsg = ""
			m.goal += goalStep
			m.goalInput.SetValue(strconv.Itoa(m.goal))
			return m, nil
		case "down":
			if m.goal > goalStep {
				m.errMsg = ""
				m.goal -= goalStep
				m.goalInput.SetValue(strconv.Itoa(m.goal))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the totals, the weekly calorie
// chart, the workout distribution, the weekday histogram, and the goal
// progress bar. An empty history collapses into a single placeholder
// line.
func (m *ProgressModel) View() string {
	if m.loading {
		return renderPage("PROGRESS", "Loading history...", "esc: back")
	}
	if m.errMsg != "" && m.report.IsEmpty() {
		return renderPage("PROGRESS", errorStyle.Render("Error: "+m.errMsg), "esc: back")
	}
	if m.report.IsEmpty() {
		return renderPage("PROGRESS", "No workout data yet. Log your first workout!", "esc: back")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Workouts: %d   Calories: %d   Avg/workout: %.2f\n\n", m.report.TotalWorkouts, m.report.TotalCalories, m.report.AvgCalories))

	b.WriteString("Calories per week\n")
	maxWeekly := 0
	for _, week := range m.report.Weekly {
		if week.Calories > maxWeekly {
			maxWeekly = week.Calories
		}
	}
	for _, week := range m.report.Weekly {
		b.WriteString(fmt.Sprintf("%-9s %-24s %d\n", week.Week, renderBar(week.Calories, maxWeekly, 24), week.Calories))
	}

	b.WriteString("\nWorkout distribution\n")
	maxExercise := 0
	for _, slice := range m.report.Distribution {
		if slice.Count > maxExercise {
			maxExercise = slice.Count
		}
	}
	for _, slice := range m.report.Distribution {
		share := float64(slice.Count) / float64(m.report.TotalWorkouts) * 100
		b.WriteString(fmt.Sprintf("%-15s %-24s %d (%.1f%%)\n", slice.Exercise, renderBar(slice.Count, maxExercise, 24), slice.Count, share))
	}

	b.WriteString("\nWorkouts per weekday\n")
	maxCount := 0
	for _, bucket := range m.report.Weekdays {
		if bucket.Count > maxCount {
			maxCount = bucket.Count
		}
	}
	for _, bucket := range m.report.Weekdays {
		b.WriteString(fmt.Sprintf("%-9s %-24s %d\n", bucket.Day, renderBar(bucket.Count, maxCount, 24), bucket.Count))
	}

	ratio, err := metrics.ProgressRatio(m.report.TotalCalories, m.goal)
	if err != nil {
		ratio = 0
	}
	b.WriteString("\nCalorie goal: [")
	b.WriteString(m.goalInput.View())
	b.WriteString("]\n")
	b.WriteString(m.goalBar.ViewAs(ratio))
	b.WriteString(fmt.Sprintf("\n%d / %d kcal", m.report.TotalCalories, m.goal))
	if ratio >= 1 {
		b.WriteString("\n")
		b.WriteString(successStyle.Render("Goal reached!"))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("PROGRESS — "+m.session.Username, strings.TrimRight(b.String(), "\n"), "esc: back │ enter: apply goal │ ↑/↓: ±100")
}

func (m *ProgressModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	workouts := m.workouts
	username := m.session.Username

	return func() tea.Msg {
		history, err := workouts.History(ctx, username)
		return historyLoadedMsg{workouts: history, err: err}
	}
}
