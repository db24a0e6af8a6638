package main

import (
	"context"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/client"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/config"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/service"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/store"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/tui"
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		logger.NewLogger("fitness-tracker").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("fitness-tracker", cfg.Logs.FilePath)

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing database")
		}
	}()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg.App, log)

	ui, err := tui.New(services, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("app run error")
	}
}
