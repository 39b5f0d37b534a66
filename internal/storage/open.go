package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/config"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage/memory"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage/redisstore"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage/sqlstore"
)

var (
	_ Store = (*memory.Store)(nil)
	_ Store = (*sqlstore.Store)(nil)
	_ Store = (*redisstore.Store)(nil)
)

// Open builds the backend selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		slog.Warn("Using in-memory storage, data will not survive a restart")
		return memory.New(), nil

	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create storage directory: %w", err)
			}
		}

		return sqlstore.Open(ctx, sqlstore.DialectSQLite, cfg.Storage.Path)

	case config.DriverPostgres:
		return sqlstore.Open(ctx, sqlstore.DialectPostgres, cfg.Database.GetDSN())

	case config.DriverRedis:
		client, err := redisstore.NewClient(ctx, &cfg.RedisConnect)
		if err != nil {
			return nil, err
		}

		return redisstore.New(client), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
