package health

import (
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/diet-tracker/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const (
	ComponentName    = "diet-tracker"
	ComponentVersion = "1.0.0"
)

// Checks lists the dependencies /health probes. Both stores are required for
// every authenticated route, so neither is skipped on error.
func Checks(cfg *config.Config) []health.Config {
	return []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
	}
}

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    ComponentName,
			Version: ComponentVersion,
		}),
		health.WithSystemInfo(),
		health.WithChecks(Checks(cfg)...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
