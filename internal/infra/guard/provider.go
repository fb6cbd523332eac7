package guard

import (
	"context"
	"log/slog"

	"redcolabora/config"
	"redcolabora/internal/domain/lifecycle"
	"redcolabora/internal/domain/service"
	"redcolabora/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Params defines the dependencies for the toggle guard provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewToggleGuard picks the guard implementation from configuration.
func NewToggleGuard(params Params) (service.ToggleGuard, error) {
	guardCfg := params.Config.ToggleGuard

	switch guardCfg.Driver {
	case DriverMemory:
		return NewMemoryGuard(), nil
	case DriverRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis toggle guard requires redis.addr")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisGuard(client, guardCfg.TTL, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown toggle guard driver: %s", guardCfg.Driver)
	}
}
