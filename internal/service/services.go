package service

import (
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/config"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/store"
)

// Services bundles every business-logic service behind one handle.
type Services struct {
	AuthService
	WorkoutService
}

// NewServices wires the service layer on top of the given repositories.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.Users, cfg, logger),
		WorkoutService: NewWorkoutService(repos.Workouts, logger),
	}
}
