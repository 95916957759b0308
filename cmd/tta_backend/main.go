package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bjtmarts/transfer_tracker_app/internal/adapters/mail"
	"github.com/bjtmarts/transfer_tracker_app/internal/adapters/remote/github"
	"github.com/bjtmarts/transfer_tracker_app/internal/adapters/storage/csvfile"
	"github.com/bjtmarts/transfer_tracker_app/internal/adapters/storage/jsonfile"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/bjtmarts/transfer_tracker_app/internal/core/ports/services"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/services"
	"github.com/bjtmarts/transfer_tracker_app/internal/handlers"
	"github.com/bjtmarts/transfer_tracker_app/internal/middleware"
	"github.com/bjtmarts/transfer_tracker_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Transfer Tracker API
// @version 1.0
// @description Backend API for the inter-store transfer tracker.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Local file stores
	recordRepo := csvfile.NewRecordRepository(cfg.TrackerCSVPath)
	settingsRepo := jsonfile.NewSettingsRepository(cfg.TrackerConfigPath, logger)
	logger.Info("Local stores configured",
		slog.String("csv_path", cfg.TrackerCSVPath),
		slog.String("config_path", cfg.TrackerConfigPath))

	// Remote sync target is optional; nil disables pushes.
	var remoteStore repositories.RemoteStore
	if cfg.GitHubOwnerRepo != "" && cfg.GitHubToken != "" {
		store, err := github.NewRemoteStore(context.Background(), cfg.GitHubOwnerRepo, cfg.GitHubToken, cfg.GitHubTargetBranch)
		if err != nil {
			logger.Error("Failed to configure remote store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		remoteStore = store
		logger.Info("Remote sync configured", slog.String("repo", cfg.GitHubOwnerRepo), slog.String("branch", cfg.GitHubTargetBranch))
	} else {
		logger.Warn("Remote sync disabled: GITHUB_OWNER_REPO/GITHUB_TOKEN not set")
	}

	mailer := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTPServer,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.FromEmail,
	})

	// Wire services
	trackerService := services.NewTrackerService(recordRepo, settingsRepo, mailer, services.MailRouting{
		AccountsTo:  cfg.AccountsTo,
		AccountsCc:  cfg.AccountsCc,
		ECommerceTo: cfg.ECommerceTo,
	})
	settingsService := services.NewSettingsService(settingsRepo)
	syncService := services.NewSyncService(recordRepo, remoteStore, cfg.GitHubTargetPath)

	serviceContainer := &portssvc.ServiceContainer{
		Tracker:  trackerService,
		Settings: settingsService,
		Sync:     syncService,
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
