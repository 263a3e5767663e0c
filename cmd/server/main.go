package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/JoeThomas01/deviceloans-notify-service/internal/config"
	"github.com/JoeThomas01/deviceloans-notify-service/internal/middleware"
	"github.com/JoeThomas01/deviceloans-notify-service/internal/server"
	"github.com/JoeThomas01/deviceloans-notify-service/pkg/logger"
	"github.com/JoeThomas01/deviceloans-notify-service/pkg/mailer/resend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, middleware.RequestIDExtractor())
	sender := resend.New(cfg.Resend)

	router := server.Router(log, sender)
	if err := server.Run(context.Background(), cfg.Server, log, router); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
