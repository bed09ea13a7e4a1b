package health

import (
	"context"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/mo7amedgom3a/storefront/internal/config"
	"github.com/mo7amedgom3a/storefront/pkg/commerce"
)

// NewHealthHandler registers a check per configured backend plus the upstream
// commerce API itself.
func NewHealthHandler(cfg *config.Config, client commerce.Client) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:    "commerce-api",
			Timeout: 5 * time.Second,
			// The storefront degrades to fallback data when upstream is down,
			// so this check is informational rather than fatal.
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				_, err := client.ListProducts(ctx)

				return err
			},
		},
	}

	switch cfg.Store.Backend {
	case "postgres":
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	case "redis":
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, err
	}

	return h, nil
}
