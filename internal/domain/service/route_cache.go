package service

import (
	"context"
	"time"

	"bikeroute/internal/domain/entity"
)

// RouteCache stores successful routing results. A miss is (nil, nil).
type RouteCache interface {
	Get(ctx context.Context, key string) (*entity.RoutingResult, error)
	Set(ctx context.Context, key string, result *entity.RoutingResult, ttl time.Duration) error
}
