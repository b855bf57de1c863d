package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"bikeroute/config"
	deliverycontext "bikeroute/internal/delivery/context"
	"bikeroute/internal/domain/entity"
	domainerrors "bikeroute/internal/domain/errors"
	"bikeroute/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultAverageSpeedKmh      = 16.0
	defaultMaxImprovementPasses = 100
)

type optimizerService struct {
	averageSpeedKmh float64
	maxPasses       int
	logger          *slog.Logger
}

// OptimizerServiceParams holds dependencies for the optimizer, injected by Fx.
type OptimizerServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewOptimizerService creates a new stop ordering service
func NewOptimizerService(params OptimizerServiceParams) usecase.OptimizerUsecase {
	svc := &optimizerService{
		averageSpeedKmh: defaultAverageSpeedKmh,
		maxPasses:       defaultMaxImprovementPasses,
		logger:          params.Logger,
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	if params.Config != nil && params.Config.Optimizer != nil {
		if params.Config.Optimizer.AverageSpeedKmh > 0 {
			svc.averageSpeedKmh = params.Config.Optimizer.AverageSpeedKmh
		}
		if params.Config.Optimizer.MaxImprovementPasses > 0 {
			svc.maxPasses = params.Config.Optimizer.MaxImprovementPasses
		}
	}

	return svc
}

// Optimize runs nearest-neighbor from the start followed by 2-opt on
// straight-line distances, then compares the result with the input order.
func (s *optimizerService) Optimize(ctx context.Context, req *entity.OptimizeRequest) (*entity.OptimizationResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	started := time.Now()

	ids, err := validateOptimizeRequest(req)
	if err != nil {
		return nil, err
	}

	end := req.End
	if req.RoundTrip {
		end = nil
	}
	t := newTour(req.Start, req.Stops, end, req.RoundTrip)

	original := t.identity()
	originalMeters := t.length(original)

	order := original
	optimizedMeters := originalMeters
	passes := 0

	if len(req.Stops) > 1 {
		candidate, usedPasses := t.twoOpt(ctx, t.nearestNeighbor(), s.maxPasses)
		passes = usedPasses

		// Keep the input order unless the heuristic strictly beats it
		if candidateMeters := t.length(candidate); candidateMeters < originalMeters-improvementEpsilonMeters {
			order = candidate
			optimizedMeters = candidateMeters
		}
	}

	result := s.buildResult(t, ids, order, optimizedMeters, originalMeters)

	logger.Debug("[Optimizer] Stop order computed",
		slog.Int("stops", len(req.Stops)),
		slog.Int("passes", passes),
		slog.Bool("improved", result.Improved),
		slog.Float64("savings_miles", result.DistanceSavingsMiles),
		slog.Duration("elapsed", time.Since(started)),
	)

	return result, nil
}

func (s *optimizerService) buildResult(t *tour, ids []string, order []int, optimizedMeters, originalMeters float64) *entity.OptimizationResult {
	optimizedOrder := make([]string, len(order))
	distanceFromStart := make(map[string]float64, len(order))
	for i, meters := range t.cumulative(order) {
		id := ids[order[i]-1]
		optimizedOrder[i] = id
		distanceFromStart[id] = entity.MetersToMiles(meters)
	}

	totalMiles := entity.MetersToMiles(optimizedMeters)
	originalMiles := entity.MetersToMiles(originalMeters)
	savingsMiles := math.Max(0, originalMiles-totalMiles)

	savingsPercent := 0.0
	if originalMiles > 0 {
		savingsPercent = savingsMiles / originalMiles * 100
	}

	minutes := s.estimateMinutes(optimizedMeters)
	originalMinutes := s.estimateMinutes(originalMeters)

	return &entity.OptimizationResult{
		OptimizedOrder:               optimizedOrder,
		TotalDistanceMiles:           totalMiles,
		OriginalDistanceMiles:        originalMiles,
		DistanceSavingsMiles:         savingsMiles,
		DistanceSavingsPercent:       savingsPercent,
		EstimatedTimeMinutes:         minutes,
		OriginalEstimatedTimeMinutes: originalMinutes,
		TimeSavingsMinutes:           max(0, originalMinutes-minutes),
		DistanceFromStartMiles:       distanceFromStart,
		Improved:                     savingsMiles > 0,
	}
}

func (s *optimizerService) estimateMinutes(meters float64) int {
	hours := meters / 1000 / s.averageSpeedKmh

	return int(math.Round(hours * 60))
}

// validateOptimizeRequest checks coordinates and resolves stop identifiers.
// Stops without an ID are identified by their input index.
func validateOptimizeRequest(req *entity.OptimizeRequest) ([]string, error) {
	if req == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("optimization request is required")
	}

	if err := req.Start.Validate("start"); err != nil {
		return nil, domainerrors.ErrInvalidStart.WithDetails(err.Error())
	}
	if req.End != nil && !req.RoundTrip {
		if err := req.End.Validate("end"); err != nil {
			return nil, domainerrors.ErrInvalidEnd.WithDetails(err.Error())
		}
	}

	ids := make([]string, len(req.Stops))
	seen := make(map[string]struct{}, len(req.Stops))
	for i, stop := range req.Stops {
		if err := stop.Validate(fmt.Sprintf("stops[%d]", i)); err != nil {
			return nil, domainerrors.ErrInvalidStops.WithDetails(err.Error())
		}

		id := stop.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		if _, dup := seen[id]; dup {
			return nil, domainerrors.ErrInvalidStops.WithDetails(fmt.Sprintf("duplicate stop id %q", id))
		}
		seen[id] = struct{}{}
		ids[i] = id
	}

	return ids, nil
}
