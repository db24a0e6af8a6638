package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/metrics"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/service"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

const (
	addFieldDate = iota
	addFieldDuration
	addFieldCount
)

// AddWorkoutModel is the workout entry form: a date input, an exercise
// selector, and a duration input with a live calorie estimate. Submitting
// dispatches the async save command; the saved entry is echoed back as a
// summary card.
type AddWorkoutModel struct {
	ctx      context.Context
	workouts service.WorkoutService
	session  Session

	inputs      []textinput.Model
	focus       int
	exercises   []string
	exerciseIdx int
	submitting  bool
	errMsg      string
	lastSaved   *models.Workout
}

func NewAddWorkoutModel(ctx context.Context, workouts service.WorkoutService, session Session) *AddWorkoutModel {
	dateInput := textinput.New()
	dateInput.Placeholder = models.DateLayout
	dateInput.CharLimit = len(models.DateLayout)
	dateInput.Width = 40
	dateInput.SetValue(time.Now().Format(models.DateLayout))
	dateInput.Focus()

	durationInput := textinput.New()
	durationInput.Placeholder = "minutes (1-120)"
	durationInput.CharLimit = 3
	durationInput.Width = 40

	return &AddWorkoutModel{
		ctx:       ctx,
		workouts:  workouts,
		session:   session,
		inputs:    []textinput.Model{dateInput, durationInput},
		exercises: models.Exercises(),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *AddWorkoutModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [workoutSavedMsg] — clears submitting state; on error, populates
//     errMsg; on success, keeps the saved entry for the summary card and
//     resets the duration field.
//   - esc               — navigates back to the main menu.
//   - tab / shift+tab   — moves focus between date and duration.
//   - left / right      — cycles the exercise selector.
//   - enter             — validates inputs and dispatches the save command.
//
// All other key events are forwarded to the focused input widget.
func (m *AddWorkoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(workoutSavedMsg); ok {
		m.submitting = false
		if saved.err != nil {
			m.errMsg = humanizeError(saved.err)
			return m, nil
		}
		m.errMsg = ""
		workout := saved.workout
		m.lastSaved = &workout
		m.inputs[addFieldDuration].SetValue("")
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.lastSaved = nil
			return m, func() tea.Msg { return NavigateTo{Page: "home"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "left":
			m.exerciseIdx = (m.exerciseIdx - 1 + len(m.exercises)) % len(m.exercises)
			return m, nil
		case "right":
			m.exerciseIdx = (m.exerciseIdx + 1) % len(m.exercises)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			date, duration, errMsg := m.collectForm()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(date, m.exercises[m.exerciseIdx], duration)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the entry form with a live calorie
// estimate under the duration field and, after a successful save, a
// summary card for the stored entry.
func (m *AddWorkoutModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	b.WriteString("Date       │ [")
	b.WriteString(m.inputs[addFieldDate].View())
	b.WriteString("]\n")
	b.WriteString("Exercise   │ ← ")
	b.WriteString(m.exercises[m.exerciseIdx])
	b.WriteString(" →\n")
	b.WriteString("Duration   │ [")
	b.WriteString(m.inputs[addFieldDuration].View())
	b.WriteString("]\n")

	if duration, err := strconv.Atoi(strings.TrimSpace(m.inputs[addFieldDuration].Value())); err == nil && duration > 0 {
		b.WriteString(fmt.Sprintf("\nEstimated burn: %.0f kcal\n", metrics.PredictCalories(duration)))
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	if m.lastSaved != nil {
		b.WriteString("\n")
		b.WriteString(successStyle.Render("Saved:"))
		b.WriteString(fmt.Sprintf("\n  %s │ %s │ %d min │ %d kcal\n",
			m.lastSaved.Date.Format(models.DateLayout), m.lastSaved.Exercise, m.lastSaved.Duration, m.lastSaved.Calories))
	}

	return renderPage("ADD WORKOUT", strings.TrimRight(b.String(), "\n"), "esc: back │ ←/→: exercise │ tab: next field │ enter: save")
}

func (m *AddWorkoutModel) collectForm() (time.Time, int, string) {
	date, err := time.Parse(models.DateLayout, strings.TrimSpace(m.inputs[addFieldDate].Value()))
	if err != nil {
		return time.Time{}, 0, "Date must look like " + models.DateLayout
	}

	duration, err := strconv.Atoi(strings.TrimSpace(m.inputs[addFieldDuration].Value()))
	if err != nil || duration < 1 || duration > 120 {
		return time.Time{}, 0, "Duration must be between 1 and 120 minutes"
	}

	return date, duration, ""
}

func (m *AddWorkoutModel) cmdSave(date time.Time, exercise string, duration int) tea.Cmd {
	ctx := m.ctx
	workouts := m.workouts
	username := m.session.Username

	return func() tea.Msg {
		workout, err := workouts.Add(ctx, username, date, exercise, duration)
		return workoutSavedMsg{workout: workout, err: err}
	}
}

func (m *AddWorkoutModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AddWorkoutModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
