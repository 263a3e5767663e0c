package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/JoeThomas01/deviceloans-notify-service/internal/server"
	"github.com/JoeThomas01/deviceloans-notify-service/pkg/logger"
	"github.com/JoeThomas01/deviceloans-notify-service/pkg/mailer/resend"
)

// Config is the full service configuration, populated from the process
// environment. Email credentials are read here but validated lazily, on the
// first send, so a misconfigured deployment serves health checks and
// reports the problem per request instead of crashing at startup.
type Config struct {
	Server server.Config
	Resend resend.Config
	Sentry logger.SentryConfig
}

// Load reads configuration from a .env file (when present) and the process
// environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return env.ParseAs[Config]()
}
