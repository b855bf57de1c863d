package usecase

import (
	"context"

	"bikeroute/internal/domain/entity"

	"github.com/google/uuid"
)

// ProposeInput is an optimization request with optional road routing
type ProposeInput struct {
	entity.OptimizeRequest

	IncludeRoadRoute bool
	RouteOptions     RouteOptions
}

// SaveRouteInput is an accepted proposal to commit to the route store
type SaveRouteInput struct {
	Name                 string
	Color                string
	Start                entity.Waypoint
	End                  *entity.Waypoint
	RoundTrip            bool
	Stops                []entity.Waypoint // In the accepted visiting order
	TotalDistanceMiles   float64
	EstimatedTimeMinutes int
	Profile              entity.Profile
}

// PlannerUsecase drives the propose-then-commit workflow
type PlannerUsecase interface {
	// Propose optimizes the stop order and, when asked, fetches the road route
	// for it. Nothing is persisted.
	Propose(ctx context.Context, input *ProposeInput) (*entity.Proposal, error)

	// Commit persists an accepted route and announces it.
	Commit(ctx context.Context, input *SaveRouteInput) (*entity.SavedRoute, error)

	GetRoute(ctx context.Context, id uuid.UUID) (*entity.SavedRoute, error)
	ListRoutes(ctx context.Context, limit, offset int) ([]*entity.SavedRoute, error)
}
