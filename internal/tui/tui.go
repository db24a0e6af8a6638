// Package tui implements the terminal user interface of the fitness
// tracker on top of Bubble Tea. The interface runs as two programs: the
// login flow (menu, log in, register) and the main loop (dashboard, add
// workout, progress). Pages are plain tea.Model values routed by
// [RootModel].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/config"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/service"
)

// ErrUserQuit is returned when the user closes the program with Ctrl+C
// instead of finishing a flow.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	cfg      config.App
	logger   *logger.Logger
}

func New(services *service.Services, cfg config.App, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	return &TUI{services: services, cfg: cfg, logger: logger}, nil
}

// LoginFlow runs the authentication program and blocks until the user
// either authenticates or quits. Returns the session for the
// authenticated user or ErrUserQuit.
func (t *TUI) LoginFlow(ctx context.Context) (Session, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return Session{}, ErrUserQuit
	}

	return NewSession(result.resultUsername), nil
}

// MainLoop runs the signed-in program for session and blocks until the
// user logs out or quits. Returns logout=true when control should go back
// to the login flow.
func (t *TUI) MainLoop(ctx context.Context, session Session) (logout bool, err error) {
	pages := map[string]tea.Model{
		"home":      NewHomeModel(session),
		"dashboard": NewDashboardModel(ctx, t.services.AuthService, session),
		"add":       NewAddWorkoutModel(ctx, t.services.WorkoutService, session),
		"progress":  NewProgressModel(ctx, t.services.WorkoutService, session, t.cfg.DefaultCalorieGoal),
	}

	root := NewRootModel(pages, "home")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
