// main.go
package main

import (
	"context"
	"log"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/mailer"
	"movie-catalog/pkg/storage"
	"movie-catalog/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// Load config; required values are validated here, not at first use.
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	store, err := storage.NewS3Store(config.S3, logger)
	if err != nil {
		logger.Fatal("Failed to init object storage", zap.Error(err))
	}

	smtp := mailer.NewSMTPMailer(config.Email, logger)
	tokens := utils.NewTokenManager(config.JWT)

	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, tokens, store, smtp, logger)

	// Schedule the release-day notification job; a failed run only logs
	// and the schedule survives to its next tick.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(config.Notify.Schedule, func() {
		app.Service.Notify.Run(context.Background())
	}); err != nil {
		logger.Fatal("Failed to schedule notification job", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	logger.Info("Notification job scheduled", zap.String("schedule", config.Notify.Schedule))

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
