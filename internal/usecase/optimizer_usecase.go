package usecase

import (
	"context"

	"bikeroute/internal/domain/entity"
)

// OptimizerUsecase defines the interface for stop ordering
type OptimizerUsecase interface {
	// Optimize proposes a visiting order for the stops. It never mutates the
	// request and never returns an order longer than the original one.
	Optimize(ctx context.Context, req *entity.OptimizeRequest) (*entity.OptimizationResult, error)
}
