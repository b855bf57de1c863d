package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bikeroute/config"
	"bikeroute/internal/delivery/api/router"
	"bikeroute/internal/delivery/api/router/handler"
	"bikeroute/internal/domain/entity"
	domainerrors "bikeroute/internal/domain/errors"
	mockUsecase "bikeroute/internal/mocks/usecase"
	"bikeroute/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testAPI struct {
	echo    *echo.Echo
	routing *mockUsecase.MockRoutingUsecase
	planner *mockUsecase.MockPlannerUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	api := &testAPI{
		echo:    newEcho(cfg, logger),
		routing: mockUsecase.NewMockRoutingUsecase(t),
		planner: mockUsecase.NewMockPlannerUsecase(t),
	}

	router.NewRouter(router.RouterParams{
		DirectionsHandler:   handler.NewDirectionsHandler(handler.DirectionsHandlerParams{RoutingUC: api.routing, Logger: logger}),
		OptimizationHandler: handler.NewOptimizationHandler(handler.OptimizationHandlerParams{PlannerUC: api.planner, Logger: logger}),
		RouteHandler:        handler.NewRouteHandler(handler.RouteHandlerParams{PlannerUC: api.planner, Logger: logger}),
	}).RegisterRoutes(api.echo)

	return api
}

func (a *testAPI) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

const twoWaypoints = `{"waypoints":[{"lat":40.015,"lng":-105.2705},{"lat":40.0274,"lng":-105.2519}],"profile":"mountain"}`

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestDirections_Available(t *testing.T) {
	api := newTestAPI(t)
	route := entity.NewRoutingResult(orb.LineString{{-105.2705, 40.015}, {-105.2519, 40.0274}}, 1019, 163,
		entity.RoutingServicePrimary, entity.ProfileMountain)

	api.routing.EXPECT().
		GetRoute(mock.Anything, []entity.Waypoint{{Lat: 40.015, Lng: -105.2705}, {Lat: 40.0274, Lng: -105.2519}},
			usecase.RouteOptions{Profile: entity.ProfileMountain}).
		Return(route, nil).Once()

	rec, env := api.do(t, http.MethodPost, "/api/v1/directions", twoWaypoints)
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.DirectionsResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.True(t, got.Available)
	require.NotNil(t, got.Route)
	assert.Equal(t, 3, got.Route.DurationMinutes)
	assert.Equal(t, "lng,lat", got.Route.CoordinateOrder)
}

func TestDirections_Unavailable(t *testing.T) {
	api := newTestAPI(t)
	api.routing.EXPECT().GetRoute(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()

	rec, env := api.do(t, http.MethodPost, "/api/v1/directions", twoWaypoints)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":false}`, string(env.Data))
}

func TestDirections_InvalidWaypoints(t *testing.T) {
	api := newTestAPI(t)
	api.routing.EXPECT().GetRoute(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidWaypoints.WithDetails("need at least 2 waypoints, got 1")).Once()

	rec, env := api.do(t, http.MethodPost, "/api/v1/directions", `{"waypoints":[{"lat":1,"lng":2}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_WAYPOINTS", env.Error.Code)
	assert.Equal(t, "need at least 2 waypoints, got 1", env.Error.Details)
}

func TestDirections_UnknownProfileRejectedAtEdge(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodPost, "/api/v1/directions", `{"waypoints":[],"profile":"gravel"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestDirections_MalformedBody(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodPost, "/api/v1/directions", `{"waypoints":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestOptimizations_MapsRequest(t *testing.T) {
	api := newTestAPI(t)
	proposal := &entity.Proposal{
		ID:           uuid.New(),
		Optimization: &entity.OptimizationResult{OptimizedOrder: []string{"b", "a"}},
	}

	var captured *usecase.ProposeInput
	api.planner.EXPECT().Propose(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *usecase.ProposeInput) {
			captured = input
		}).
		Return(proposal, nil).Once()

	body := `{
		"start":{"id":"home","lat":40.0,"lng":-105.2},
		"end":{"lat":40.1,"lng":-105.1},
		"stops":[{"id":"a","lat":40.02,"lng":-105.22},{"id":"b","lat":40.01,"lng":-105.21,"address":"Pearl St"}],
		"includeRoadRoute":true,
		"skipPrimary":true
	}`
	rec, env := api.do(t, http.MethodPost, "/api/v1/optimizations", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, captured)
	assert.Equal(t, "home", captured.Start.ID)
	require.NotNil(t, captured.End)
	assert.InDelta(t, 40.1, captured.End.Lat, 1e-12)
	assert.Len(t, captured.Stops, 2)
	assert.Equal(t, "Pearl St", captured.Stops[1].Address)
	assert.True(t, captured.IncludeRoadRoute)
	assert.True(t, captured.RouteOptions.SkipPrimary)

	var got entity.Proposal
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, []string{"b", "a"}, got.Optimization.OptimizedOrder)
}

func TestOptimizations_InvalidStops(t *testing.T) {
	api := newTestAPI(t)
	api.planner.EXPECT().Propose(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidStops.WithDetails("stops[0]: latitude 91 out of range")).Once()

	rec, env := api.do(t, http.MethodPost, "/api/v1/optimizations", `{"start":{"lat":0,"lng":0},"stops":[{"lat":91,"lng":0}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STOPS", env.Error.Code)
}

func TestOptimizations_UnexpectedErrorHidesInternals(t *testing.T) {
	api := newTestAPI(t)
	api.planner.EXPECT().Propose(mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: refused")).Once()

	rec, env := api.do(t, http.MethodPost, "/api/v1/optimizations", `{"start":{"lat":0,"lng":0}}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "dial tcp")
}

func TestRoutes_Create(t *testing.T) {
	api := newTestAPI(t)
	saved := &entity.SavedRoute{ID: uuid.New(), Name: "Loop", CreatedAt: time.Now().UTC()}

	api.planner.EXPECT().Commit(mock.Anything, mock.MatchedBy(func(in *usecase.SaveRouteInput) bool {
		return in.Name == "Loop" && in.Color == "#10B981" && in.RoundTrip && len(in.Stops) == 1 && in.Profile == entity.ProfileRoad
	})).Return(saved, nil).Once()

	body := `{"name":"Loop","color":"#10B981","start":{"lat":40,"lng":-105},"roundTrip":true,
		"stops":[{"id":"a","lat":40.01,"lng":-105.01}],"totalDistanceMiles":1.4,"estimatedTimeMinutes":8,"profile":"road"}`
	rec, env := api.do(t, http.MethodPost, "/api/v1/routes", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got entity.SavedRoute
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, saved.ID, got.ID)
}

func TestRoutes_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"start":{"lat":0,"lng":0},"stops":[{"lat":1,"lng":1}]}`},
		{name: "no stops", body: `{"name":"x","start":{"lat":0,"lng":0},"stops":[]}`},
		{name: "bad color", body: `{"name":"x","color":"red","start":{"lat":0,"lng":0},"stops":[{"lat":1,"lng":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec, env := api.do(t, http.MethodPost, "/api/v1/routes", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		})
	}
}

func TestRoutes_Get(t *testing.T) {
	api := newTestAPI(t)
	id := uuid.New()

	api.planner.EXPECT().GetRoute(mock.Anything, id).Return(&entity.SavedRoute{ID: id, Name: "Loop"}, nil).Once()

	rec, _ := api.do(t, http.MethodGet, "/api/v1/routes/"+id.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_GetErrors(t *testing.T) {
	api := newTestAPI(t)
	missing := uuid.New()
	api.planner.EXPECT().GetRoute(mock.Anything, missing).Return(nil, domainerrors.ErrRouteNotFound).Once()

	rec, env := api.do(t, http.MethodGet, "/api/v1/routes/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)

	rec, env = api.do(t, http.MethodGet, "/api/v1/routes/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestRoutes_List(t *testing.T) {
	api := newTestAPI(t)
	api.planner.EXPECT().ListRoutes(mock.Anything, 5, 10).
		Return([]*entity.SavedRoute{{ID: uuid.New()}, {ID: uuid.New()}}, nil).Once()

	rec, env := api.do(t, http.MethodGet, "/api/v1/routes?limit=5&offset=10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.ListRoutesResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 2, got.Count)

	rec, env = api.do(t, http.MethodGet, "/api/v1/routes?limit=ten", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestRequestIDPropagates(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "trace-me")
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, "trace-me", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"request_id":"trace-me"`)
}
