package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"

	"reviewhub/internal/config"
	"reviewhub/internal/mailer"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		},
		asynq.Config{Concurrency: 10},
	)

	// TODO: swap in an SMTP mailer once the relay credentials land.
	handler := mailer.NewConfirmationEmailHandler(&mailer.LogMailer{Logger: logger}, logger)

	mux := asynq.NewServeMux()
	mux.Handle(mailer.TypeConfirmationEmail, handler)

	logger.Info("mail worker started", slog.String("redis_addr", cfg.RedisAddr))
	if err := server.Run(mux); err != nil {
		logger.Error("mail worker stopped", slog.Any("error", err))
	}
}
