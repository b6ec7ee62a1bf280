package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"task-tracker/config"
	_ "task-tracker/docs" // Swagger docs
	"task-tracker/internal/httpserver"
	"task-tracker/internal/middleware"
	taskHTTP "task-tracker/internal/task/delivery/http"
	tgDelivery "task-tracker/internal/task/delivery/telegram"
	"task-tracker/internal/task/presenter"
	"task-tracker/internal/task/repository/file"
	"task-tracker/internal/task/usecase"
	"task-tracker/pkg/gcalendar"
	"task-tracker/pkg/log"
	"task-tracker/pkg/telegram"
)

// @title       Task Tracker API
// @description Personal task tracker: one command line in, one reply out. Also reachable through a Telegram bot.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Path)

	// 3. Task session
	ucCfg := usecase.Config{
		Storage:   file.New(afero.NewOsFs(), cfg.Storage.Path, logger),
		Presenter: presenter.NewText(cfg.Session.BotName),
	}
	if cfg.GoogleCalendar.Enabled() {
		calendarClient, calErr := gcalendar.NewClient(ctx, gcalendar.Options{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./cmd/gcal-auth` to create the OAuth token")
		} else {
			loc, _ := cfg.GoogleCalendar.Location()
			ucCfg.Calendar = calendarClient
			ucCfg.CalendarID = cfg.GoogleCalendar.CalendarID
			ucCfg.Location = loc
			logger.Infof(ctx, "Google Calendar mirror enabled (%s, %s)", cfg.GoogleCalendar.CalendarID, loc)
		}
	}

	taskUC := usecase.New(logger, ucCfg)
	start := taskUC.Start(ctx)
	if start.LoadFailed {
		logger.Warn(ctx, "Stored tasks could not be loaded, starting with an empty list")
	} else {
		logger.Infof(ctx, "Loaded %d tasks", start.TaskCount)
	}

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, telegramBot)

		// Register webhook: manual config first, then a local ngrok agent.
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" && cfg.Telegram.NgrokAPIURL != "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.Telegram.NgrokAPIURL)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin:     cfg.RateLimit.RequestsPerMin,
		TelegramSecretToken: cfg.Telegram.SecretToken,
	})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		TaskHandler:     taskHTTP.New(logger, taskUC),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
