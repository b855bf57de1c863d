package usecase

import (
	"context"

	"bikeroute/internal/domain/entity"
)

// RouteOptions tunes a single routing request
type RouteOptions struct {
	Profile     entity.Profile `json:"profile,omitempty"` // Defaults to the configured profile
	SkipPrimary bool           `json:"skipPrimary"`       // Go straight to the fallback provider
}

// RoutingUsecase defines the interface for road routing
type RoutingUsecase interface {
	// GetRoute returns a road route through the waypoints in order.
	// Invalid input returns an error and no network call is made.
	// When every provider fails the result is nil with a nil error.
	GetRoute(ctx context.Context, waypoints []entity.Waypoint, opts RouteOptions) (*entity.RoutingResult, error)
}
