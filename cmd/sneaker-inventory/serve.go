package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/api"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/config"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/health"
	service "github.com/aaravmahajanofficial/sneaker-inventory/internal/services"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/tracing"
	"github.com/aaravmahajanofficial/sneaker-inventory/pkg/sendgrid"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(os.Stdout)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {

	shutdownTracing, err := tracing.Init(ctx, &cfg.Otel, version)
	if err != nil {
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	var opts []service.InventoryOption
	if cfg.SendGrid.APIKey != "" && cfg.SendGrid.FromEmail != "" {
		emails := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName,
			sendgrid.WithHost(cfg.SendGrid.Host))
		opts = append(opts, service.WithNotifier(sendgrid.NewLowStockNotifier(emails)))
		slog.Info("Low stock e-mail alerts enabled")
	}

	s, err := openStores(ctx, cfg, true, opts...)
	if err != nil {
		slog.Error("❌ Error accessing storage", slog.String("error", err.Error()))
		return err
	}

	defer func() {
		if err := s.Close(); err != nil {
			slog.Error("⚠️ Error closing storage", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Storage closed")
		}
	}()

	healthHandler, err := health.NewHealthHandler(cfg, s.storage, version)
	if err != nil {
		return err
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.String("driver", cfg.Storage.Driver),
		slog.String("version", version),
	)

	server := http.Server{
		Addr: cfg.Addr,
		Handler: api.NewRouter(api.Deps{
			Identity:  s.identity,
			Inventory: s.inventory,
			Health:    healthHandler.Handler(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-done:
		slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")
	case err := <-serverErr:
		slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
		return err
	}

	slog.Info("✅ Server shut down gracefully. All connections closed.")

	return nil
}
