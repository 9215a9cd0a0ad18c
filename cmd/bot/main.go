package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"teatally/internal/bot"
	"teatally/internal/config"
	"teatally/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	api := bot.NewClient(appConfig.APIBaseURL, appConfig.BotAPIKey)
	handler, err := bot.NewHandler(appConfig.TelegramBotToken, api)
	if err != nil {
		return fmt.Errorf("failed to create bot handler: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Get().Info("Starting TeaTally bot gateway")
	return handler.Start(ctx)
}
