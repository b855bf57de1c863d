package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bikeroute/internal/domain/entity"
	"bikeroute/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisRouteCache stores routing results as JSON strings with a TTL
type redisRouteCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisRouteCache wraps an existing Redis client
func NewRedisRouteCache(client *redis.Client, logger *slog.Logger) service.RouteCache {
	return &redisRouteCache{
		client: client,
		logger: logger,
	}
}

func (c *redisRouteCache) Get(ctx context.Context, key string) (*entity.RoutingResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	var result entity.RoutingResult
	if err := json.Unmarshal(data, &result); err != nil {
		// A corrupt entry behaves like a miss and is overwritten on the next store
		c.logger.Warn("[RouteCache] Dropping undecodable entry",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, nil
	}

	return &result, nil
}

func (c *redisRouteCache) Set(ctx context.Context, key string, result *entity.RoutingResult, ttl time.Duration) error {
	if result == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}
