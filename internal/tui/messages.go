package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// NavigateTo switches the active page of the [RootModel]. An optional
// Payload is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the async login command. A nil Err ends the
// login flow with Username as the authenticated user.
type LoginResult struct {
	Username string
	Err      error
}

// RegisterResult is produced by the async registration command.
type RegisterResult struct {
	User models.User
	Err  error
}

// RegisterSuccessNotice is handed to the menu page after a successful
// registration so it can show a confirmation line.
type RegisterSuccessNotice struct {
	Username string
}

// LogoutRequest ends the main loop and returns control to the login flow.
type LogoutRequest struct{}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type workoutSavedMsg struct {
	workout models.Workout
	err     error
}

type historyLoadedMsg struct {
	workouts []models.Workout
	err      error
}
