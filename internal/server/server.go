package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JoeThomas01/deviceloans-notify-service/internal/handler"
	"github.com/JoeThomas01/deviceloans-notify-service/internal/middleware"
	"github.com/JoeThomas01/deviceloans-notify-service/pkg/logger"
	"github.com/JoeThomas01/deviceloans-notify-service/pkg/mailer"
)

const (
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadTimeout       = 10 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1 MB
)

// Config holds HTTP server configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Router assembles the service's HTTP surface: the liveness probe and the
// product-updated webhook, wrapped in request-ID and panic-recovery
// middleware.
func Router(log *slog.Logger, sender mailer.Sender) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	r.Get("/health", handler.Health())
	r.Post("/integration/events/product-updated", handler.ProductUpdated(log, sender))

	return r
}

// Run starts the HTTP server and blocks until a shutdown signal arrives or
// the server fails. Shutdown is graceful, bounded by cfg.ShutdownTimeout.
func Run(baseCtx context.Context, cfg Config, log *slog.Logger, h http.Handler) error {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if log == nil {
		log = logger.NewNope()
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Listen first to get actual address
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown completed with errors", slog.Any("error", err))
		return err
	}

	log.Info("shutdown completed")
	return nil
}
