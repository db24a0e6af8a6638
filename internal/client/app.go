package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/service"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/tui"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/utils"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	uuid     *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}

	return &App{
		services: services,
		tui:      ui,
		uuid:     utils.NewUUIDGenerator(),
		logger:   log,
	}, nil
}

// Run drives the whole session cycle: login flow, then the main loop,
// then back to the login flow on logout. Returns nil when the user quits.
func (a *App) Run() error {
	for {
		ctx := a.sessionContext("login")

		session, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		ctx = a.sessionContext("main")
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, session.Username)
		a.logger.Info().Str("username", session.Username).Msg("session opened")

		logout, err := a.tui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}

		a.logger.Info().Str("username", session.Username).Msg("session closed")
		if !logout {
			return nil
		}
	}
}

// sessionContext creates a context carrying a child logger tagged with a
// fresh interaction id, so all log lines of one flow can be correlated.
func (a *App) sessionContext(flow string) context.Context {
	child := a.logger.GetChildLogger()
	child.Logger = child.With().Str("flow", flow).Str("interaction_id", a.uuid.Generate()).Logger()
	return child.WithContext(context.Background())
}
