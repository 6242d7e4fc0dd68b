package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/psychohealer/psychohealer/internal/bot"
	"github.com/psychohealer/psychohealer/internal/config"
	"github.com/psychohealer/psychohealer/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	b, err := bot.New(cfg.TelegramBotToken, cfg.APIBaseURL, log)
	if err != nil {
		log.Fatal("failed to create bot", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting Telegram bot", zap.String("api_base_url", cfg.APIBaseURL))

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("bot stopped", zap.Error(err))
	}

	log.Info("bot shutdown complete")
}
