package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "bikeroute/internal/delivery/context"
	"bikeroute/internal/domain/entity"
	domainerrors "bikeroute/internal/domain/errors"
	"bikeroute/internal/domain/repository"
	"bikeroute/internal/domain/service"
	"bikeroute/internal/errors"
	"bikeroute/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	maxRouteNameLength = 100
	defaultListLimit   = 20
	maxListLimit       = 100
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type plannerService struct {
	optimizer usecase.OptimizerUsecase
	routing   usecase.RoutingUsecase
	routeRepo repository.RouteRepository
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// PlannerServiceParams holds dependencies for the planner, injected by Fx.
type PlannerServiceParams struct {
	fx.In

	Optimizer usecase.OptimizerUsecase
	Routing   usecase.RoutingUsecase
	RouteRepo repository.RouteRepository
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPlannerService creates a new propose-then-commit planner
func NewPlannerService(params PlannerServiceParams) usecase.PlannerUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &plannerService{
		optimizer: params.Optimizer,
		routing:   params.Routing,
		routeRepo: params.RouteRepo,
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Propose optimizes the stop order and optionally routes it. A route that is
// unavailable or not routable leaves the proposal without geometry.
func (s *plannerService) Propose(ctx context.Context, input *usecase.ProposeInput) (*entity.Proposal, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("proposal input is required")
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	optimization, err := s.optimizer.Optimize(ctx, &input.OptimizeRequest)
	if err != nil {
		return nil, err
	}

	ordered := orderStops(input.Stops, optimization.OptimizedOrder)
	end := input.End
	if input.RoundTrip {
		end = nil
	}

	proposal := &entity.Proposal{
		ID:           uuid.New(),
		Optimization: optimization,
		Start:        input.Start,
		End:          end,
		RoundTrip:    input.RoundTrip,
		OrderedStops: ordered,
	}

	if !input.IncludeRoadRoute {
		return proposal, nil
	}

	sequence := entity.TravelSequence(input.Start, end, input.RoundTrip, ordered)
	route, err := s.routing.GetRoute(ctx, sequence, input.RouteOptions)
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			return nil, err
		}

		// Too many points for road routing still yields an ordering
		logger.Info("[Planner] Road route skipped",
			slog.String("proposal_id", proposal.ID.String()),
			slog.String("reason", appErr.Details()),
		)

		return proposal, nil
	}

	proposal.Route = route
	proposal.RoadRouteAvailable = route != nil

	return proposal, nil
}

// Commit stores the accepted route and publishes a RouteSavedEvent.
func (s *plannerService) Commit(ctx context.Context, input *usecase.SaveRouteInput) (*entity.SavedRoute, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	route, err := s.newSavedRoute(input)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewRouteRepository().CreateRoute(ctx, route)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrRouteSaveFailed.WrapMessage(err.Error())
	}

	logger.Info("[Planner] Route saved",
		slog.String("route_id", route.ID.String()),
		slog.Int("stops", len(route.Stops)),
	)

	event := &service.RouteSavedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		RouteID:   route.ID.String(),
		Name:      route.Name,
		Profile:   route.Profile,
		Waypoints: route.Sequence(),
	}
	if err := s.publisher.PublishRouteSaved(ctx, event); err != nil {
		logger.Warn("[Planner] Failed to publish route saved event",
			slog.String("route_id", route.ID.String()),
			slog.Any("error", err),
		)
	}

	return route, nil
}

func (s *plannerService) GetRoute(ctx context.Context, id uuid.UUID) (*entity.SavedRoute, error) {
	return s.routeRepo.FindRouteByID(ctx, id)
}

func (s *plannerService) ListRoutes(ctx context.Context, limit, offset int) ([]*entity.SavedRoute, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset = max(offset, 0)

	return s.routeRepo.ListRoutes(ctx, limit, offset)
}

func (s *plannerService) newSavedRoute(input *usecase.SaveRouteInput) (*entity.SavedRoute, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("route input is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > maxRouteNameLength {
		return nil, domainerrors.ErrInvalidRoute.WithDetails(fmt.Sprintf("name must be 1 to %d characters", maxRouteNameLength))
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = entity.DefaultRouteColor
	}
	if !hexColorPattern.MatchString(color) {
		return nil, domainerrors.ErrInvalidRoute.WithDetails("color must look like #RRGGBB")
	}

	if len(input.Stops) == 0 {
		return nil, domainerrors.ErrInvalidRoute.WithDetails("at least one stop is required")
	}

	profile := input.Profile
	if profile == "" {
		profile = entity.ProfileRoad
	}
	if !profile.IsValid() {
		return nil, domainerrors.ErrUnknownProfile.WithDetails(fmt.Sprintf("profile %q", profile))
	}

	if _, err := validateOptimizeRequest(&entity.OptimizeRequest{
		Start:     input.Start,
		End:       input.End,
		RoundTrip: input.RoundTrip,
		Stops:     input.Stops,
	}); err != nil {
		return nil, err
	}

	end := input.End
	if input.RoundTrip {
		end = nil
	}

	now := s.now().UTC()

	return &entity.SavedRoute{
		ID:                   uuid.New(),
		Name:                 name,
		Color:                strings.ToUpper(color),
		Start:                input.Start,
		End:                  end,
		RoundTrip:            input.RoundTrip,
		Stops:                input.Stops,
		TotalDistanceMiles:   input.TotalDistanceMiles,
		EstimatedTimeMinutes: input.EstimatedTimeMinutes,
		Profile:              profile,
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}

// orderStops arranges stops by the optimizer's identifiers. Stops without an
// ID are matched by their input index.
func orderStops(stops []entity.Waypoint, order []string) []entity.Waypoint {
	byID := make(map[string]entity.Waypoint, len(stops))
	for i, s := range stops {
		id := s.ID
		if id == "" {
			id = fmt.Sprint(i)
		}
		byID[id] = s
	}

	ordered := make([]entity.Waypoint, 0, len(order))
	for _, id := range order {
		ordered = append(ordered, byID[id])
	}

	return ordered
}
