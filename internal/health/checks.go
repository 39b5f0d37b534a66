package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/config"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const componentName = "sneaker-inventory"

// NewHealthHandler reports the configured storage backend. Postgres and
// redis also get health-go's own connection checks.
func NewHealthHandler(cfg *config.Config, store storage.Store, version string) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "storage",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if store == nil {
					return fmt.Errorf("storage is not initialized")
				}

				if err := store.Ping(ctx); err != nil {
					return fmt.Errorf("failed to reach %s storage: %w", cfg.Storage.Driver, err)
				}

				return nil
			},
		},
	}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		checks = append(checks, health.Config{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	case config.DriverRedis:
		checks = append(checks, health.Config{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
