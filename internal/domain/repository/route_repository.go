package repository

import (
	"context"

	"bikeroute/internal/domain/entity"

	"github.com/google/uuid"
)

// RouteRepository persists committed routes.
type RouteRepository interface {
	// CreateRoute stores the route and its ordered stops.
	CreateRoute(ctx context.Context, route *entity.SavedRoute) error

	// FindRouteByID returns domainerrors.ErrRouteNotFound when absent.
	FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.SavedRoute, error)

	// ListRoutes returns routes newest first.
	ListRoutes(ctx context.Context, limit, offset int) ([]*entity.SavedRoute, error)
}
