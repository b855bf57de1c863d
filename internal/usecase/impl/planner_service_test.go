package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	deliverycontext "bikeroute/internal/delivery/context"
	"bikeroute/internal/domain/entity"
	domainerrors "bikeroute/internal/domain/errors"
	"bikeroute/internal/domain/repository"
	"bikeroute/internal/domain/service"
	mockRepo "bikeroute/internal/mocks/repository"
	mockService "bikeroute/internal/mocks/service"
	mockUsecase "bikeroute/internal/mocks/usecase"
	"bikeroute/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type plannerMocks struct {
	routing   *mockUsecase.MockRoutingUsecase
	routeRepo *mockRepo.MockRouteRepository
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	publisher *mockService.MockEventPublisher
}

func newTestPlanner(t *testing.T) (*plannerService, *plannerMocks) {
	t.Helper()

	m := &plannerMocks{
		routing:   mockUsecase.NewMockRoutingUsecase(t),
		routeRepo: mockRepo.NewMockRouteRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	svc := NewPlannerService(PlannerServiceParams{
		Optimizer: newTestOptimizer(),
		Routing:   m.routing,
		RouteRepo: m.routeRepo,
		TxManager: m.txManager,
		Publisher: m.publisher,
	}).(*plannerService)
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

	return svc, m
}

// expectTransaction runs the callback against the factory mock.
func (m *plannerMocks) expectTransaction() {
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).Once()
	m.factory.EXPECT().NewRouteRepository().Return(m.routeRepo).Once()
}

func zigZagInput() *usecase.ProposeInput {
	return &usecase.ProposeInput{
		OptimizeRequest: entity.OptimizeRequest{
			Start:     stop("home", 0, 0),
			RoundTrip: true,
			Stops:     []entity.Waypoint{stop("far", 0, 0.03), stop("near", 0, 0.01), stop("mid", 0, 0.02)},
		},
	}
}

func TestPlannerService_Propose_WithoutRoadRoute(t *testing.T) {
	svc, _ := newTestPlanner(t)

	proposal, err := svc.Propose(context.Background(), zigZagInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, proposal.ID)
	require.Len(t, proposal.OrderedStops, 3)
	assert.Equal(t, proposal.Optimization.OptimizedOrder[0], proposal.OrderedStops[0].ID)
	assert.Nil(t, proposal.Route)
	assert.False(t, proposal.RoadRouteAvailable)
}

func TestPlannerService_Propose_RoutesOptimizedSequence(t *testing.T) {
	svc, m := newTestPlanner(t)
	input := zigZagInput()
	input.IncludeRoadRoute = true
	input.RouteOptions = usecase.RouteOptions{Profile: entity.ProfileMountain}

	var sequence []entity.Waypoint
	routeResult := entity.NewRoutingResult(nil, 7000, 1500, entity.RoutingServicePrimary, entity.ProfileMountain)
	m.routing.EXPECT().GetRoute(mock.Anything, mock.Anything, input.RouteOptions).
		Run(func(_ context.Context, waypoints []entity.Waypoint, _ usecase.RouteOptions) {
			sequence = waypoints
		}).
		Return(routeResult, nil).Once()

	proposal, err := svc.Propose(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, proposal.RoadRouteAvailable)
	assert.Same(t, routeResult, proposal.Route)

	require.Len(t, sequence, 5)
	assert.Equal(t, "home", sequence[0].ID)
	assert.Equal(t, "home", sequence[4].ID, "round trip closes at the start")
	for i, id := range proposal.Optimization.OptimizedOrder {
		assert.Equal(t, id, sequence[i+1].ID)
	}
}

func TestPlannerService_Propose_RouteUnavailable(t *testing.T) {
	svc, m := newTestPlanner(t)
	input := zigZagInput()
	input.IncludeRoadRoute = true

	m.routing.EXPECT().GetRoute(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()

	proposal, err := svc.Propose(context.Background(), input)
	require.NoError(t, err)

	assert.False(t, proposal.RoadRouteAvailable)
	assert.NotEmpty(t, proposal.Optimization.OptimizedOrder)
}

func TestPlannerService_Propose_RouteRejectedStillReturnsOrdering(t *testing.T) {
	svc, m := newTestPlanner(t)
	input := zigZagInput()
	input.IncludeRoadRoute = true

	m.routing.EXPECT().GetRoute(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidWaypoints.WithDetails("got 52 waypoints")).Once()

	proposal, err := svc.Propose(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, proposal.RoadRouteAvailable)
	assert.Len(t, proposal.OrderedStops, 3)
}

func TestPlannerService_Propose_CanceledRouting(t *testing.T) {
	svc, m := newTestPlanner(t)
	input := zigZagInput()
	input.IncludeRoadRoute = true

	m.routing.EXPECT().GetRoute(mock.Anything, mock.Anything, mock.Anything).Return(nil, context.Canceled).Once()

	_, err := svc.Propose(context.Background(), input)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPlannerService_Propose_InvalidStops(t *testing.T) {
	svc, _ := newTestPlanner(t)
	input := zigZagInput()
	input.Stops[1].Lat = 100

	_, err := svc.Propose(context.Background(), input)
	assertAppErrorCode(t, err, "INVALID_STOPS")
}

func validSaveInput() *usecase.SaveRouteInput {
	return &usecase.SaveRouteInput{
		Name:                 "  Tuesday deliveries ",
		Color:                "#10b981",
		Start:                stop("home", 40.0, -105.2),
		RoundTrip:            true,
		Stops:                []entity.Waypoint{stop("a", 40.01, -105.21), stop("b", 40.02, -105.22)},
		TotalDistanceMiles:   4.2,
		EstimatedTimeMinutes: 25,
	}
}

func TestPlannerService_Commit_PersistsAndPublishes(t *testing.T) {
	svc, m := newTestPlanner(t)
	m.expectTransaction()

	var stored *entity.SavedRoute
	m.routeRepo.EXPECT().CreateRoute(mock.Anything, mock.AnythingOfType("*entity.SavedRoute")).
		Run(func(_ context.Context, route *entity.SavedRoute) {
			stored = route
		}).
		Return(nil).Once()

	var event *service.RouteSavedEvent
	m.publisher.EXPECT().PublishRouteSaved(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *service.RouteSavedEvent) {
			event = e
		}).
		Return(nil).Once()

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	route, err := svc.Commit(ctx, validSaveInput())
	require.NoError(t, err)

	assert.Same(t, stored, route)
	assert.Equal(t, "Tuesday deliveries", route.Name)
	assert.Equal(t, "#10B981", route.Color)
	assert.Equal(t, entity.ProfileRoad, route.Profile)
	assert.Equal(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC), route.CreatedAt)

	require.NotNil(t, event)
	assert.Equal(t, route.ID.String(), event.RouteID)
	assert.Equal(t, "req-123", event.RequestID)
	require.Len(t, event.Waypoints, 4)
	assert.Equal(t, "home", event.Waypoints[3].ID)
}

func TestPlannerService_Commit_PublishFailureIsNotFatal(t *testing.T) {
	svc, m := newTestPlanner(t)
	m.expectTransaction()
	m.routeRepo.EXPECT().CreateRoute(mock.Anything, mock.Anything).Return(nil).Once()
	m.publisher.EXPECT().PublishRouteSaved(mock.Anything, mock.Anything).Return(errors.New("topic missing")).Once()

	route, err := svc.Commit(context.Background(), validSaveInput())
	require.NoError(t, err)
	assert.NotNil(t, route)
}

func TestPlannerService_Commit_StoreFailure(t *testing.T) {
	svc, m := newTestPlanner(t)
	m.expectTransaction()
	m.routeRepo.EXPECT().CreateRoute(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	route, err := svc.Commit(context.Background(), validSaveInput())
	assert.Nil(t, route)
	assertAppErrorCode(t, err, "ROUTE_SAVE_FAILED")
}

func TestPlannerService_Commit_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *usecase.SaveRouteInput)
		wantCode string
	}{
		{name: "blank name", mutate: func(in *usecase.SaveRouteInput) { in.Name = "   " }, wantCode: "INVALID_ROUTE"},
		{name: "bad color", mutate: func(in *usecase.SaveRouteInput) { in.Color = "blue" }, wantCode: "INVALID_ROUTE"},
		{name: "no stops", mutate: func(in *usecase.SaveRouteInput) { in.Stops = nil }, wantCode: "INVALID_ROUTE"},
		{name: "unknown profile", mutate: func(in *usecase.SaveRouteInput) { in.Profile = "gravel" }, wantCode: "UNKNOWN_PROFILE"},
		{name: "bad stop", mutate: func(in *usecase.SaveRouteInput) { in.Stops[0].Lng = -190 }, wantCode: "INVALID_STOPS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestPlanner(t)
			input := validSaveInput()
			tt.mutate(input)

			route, err := svc.Commit(context.Background(), input)
			assert.Nil(t, route)
			assertAppErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestPlannerService_Commit_DefaultColor(t *testing.T) {
	svc, m := newTestPlanner(t)
	m.expectTransaction()
	m.routeRepo.EXPECT().CreateRoute(mock.Anything, mock.Anything).Return(nil).Once()
	m.publisher.EXPECT().PublishRouteSaved(mock.Anything, mock.Anything).Return(nil).Once()

	input := validSaveInput()
	input.Color = ""

	route, err := svc.Commit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultRouteColor, route.Color)
}

func TestPlannerService_ListRoutes_ClampsPaging(t *testing.T) {
	svc, m := newTestPlanner(t)
	m.routeRepo.EXPECT().ListRoutes(mock.Anything, defaultListLimit, 0).Return([]*entity.SavedRoute{}, nil).Once()
	m.routeRepo.EXPECT().ListRoutes(mock.Anything, maxListLimit, 5).Return([]*entity.SavedRoute{}, nil).Once()

	_, err := svc.ListRoutes(context.Background(), 0, -3)
	require.NoError(t, err)
	_, err = svc.ListRoutes(context.Background(), 1000, 5)
	require.NoError(t, err)
}

func TestPlannerService_GetRoute_NotFound(t *testing.T) {
	svc, m := newTestPlanner(t)
	id := uuid.New()
	m.routeRepo.EXPECT().FindRouteByID(mock.Anything, id).Return(nil, domainerrors.ErrRouteNotFound).Once()

	_, err := svc.GetRoute(context.Background(), id)
	assertAppErrorCode(t, err, "ROUTE_NOT_FOUND")
}
