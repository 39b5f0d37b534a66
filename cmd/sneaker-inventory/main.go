package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/config"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/ratelimit"
	service "github.com/aaravmahajanofficial/sneaker-inventory/internal/services"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage/redisstore"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	// Global flags
	configPath string
	verbose    bool
)

func main() {

	// .env is a development convenience; production sets the variables directly
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Load(); err == nil {
			fmt.Fprintln(os.Stderr, "Loaded environment variables from .env")
		}
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("❌ Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	rootCmd := &cobra.Command{
		Use:           "sneaker-inventory",
		Short:         "Per-user sneaker inventory with a JSON API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config (or set CONFIG_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func setupLogger(w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// newLoginLimiter shares attempts through redis when that is the storage
// backend and keeps them in process otherwise. The closer is nil unless a
// connection was opened.
func newLoginLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, io.Closer, error) {

	if cfg.RateLimit.MaxAttempts == 0 {
		return nil, nil, nil
	}

	limits := ratelimit.Config{MaxAttempts: cfg.RateLimit.MaxAttempts, WindowSize: cfg.RateLimit.WindowSize}

	if cfg.Storage.Driver != config.DriverRedis {
		return ratelimit.NewMemoryLimiter(limits), nil, nil
	}

	client, err := redisstore.NewClient(ctx, &cfg.RedisConnect)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect rate limiter to redis: %w", err)
	}

	return ratelimit.NewRedisLimiter(client, limits), client, nil
}

// stores is everything a command needs to run inventory operations.
type stores struct {
	storage   storage.Store
	identity  *service.IdentityStore
	inventory *service.InventoryStore
	closers   []io.Closer
}

// Close releases the limiter connection, if any, and then the storage.
func (s *stores) Close() error {
	var errs []error

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := s.storage.Close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// openStores builds the stores for a command. Only commands that log users
// in need the login limiter.
func openStores(ctx context.Context, cfg *config.Config, withLimiter bool, opts ...service.InventoryOption) (*stores, error) {

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}

	s := &stores{storage: store}

	var limiter ratelimit.Limiter
	if withLimiter {
		var closer io.Closer

		limiter, closer, err = newLoginLimiter(ctx, cfg)
		if err != nil {
			_ = s.Close()
			return nil, err
		}

		if closer != nil {
			s.closers = append(s.closers, closer)
		}
	}

	identity, err := service.NewIdentityStore(ctx, store, service.IdentityOptions{
		VerifyPasswords: cfg.Auth.VerifyPasswords,
		LoginLimiter:    limiter,
	})
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	s.identity = identity
	s.inventory = service.NewInventoryStore(store, identity, opts...)

	return s, nil
}
