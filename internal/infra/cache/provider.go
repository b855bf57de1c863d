package cache

import (
	"context"
	"log/slog"
	"time"

	"bikeroute/config"
	"bikeroute/internal/domain/entity"
	"bikeroute/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 5 * time.Second

// noopRouteCache always misses when caching is disabled
type noopRouteCache struct{}

func (noopRouteCache) Get(context.Context, string) (*entity.RoutingResult, error) {
	return nil, nil
}

func (noopRouteCache) Set(context.Context, string, *entity.RoutingResult, time.Duration) error {
	return nil
}

// CacheParams holds dependencies for RouteCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRouteCache creates a RouteCache based on configuration
func NewRouteCache(params CacheParams) (service.RouteCache, error) {
	cfg := params.Config.Cache
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Route cache disabled, using no-op cache")

		return noopRouteCache{}, nil
	}
	if cfg.Addr == "" {
		return nil, errors.New("cache address is required when the cache is enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrapf(err, "ping redis at %s", cfg.Addr)
			}
			logger.Info("Route cache connected", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing route cache")

			return errors.WithStack(client.Close())
		},
	})

	return NewRedisRouteCache(client, logger), nil
}

// Module provides the route cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRouteCache),
)
