package handler

import (
	"log/slog"
	"net/http"

	"bikeroute/internal/delivery/api/response"
	"bikeroute/internal/domain/entity"
	"bikeroute/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	PlannerUC usecase.PlannerUsecase
	Logger    *slog.Logger
}

// RouteHandler commits and reads saved routes
type RouteHandler struct {
	plannerUC usecase.PlannerUsecase
	logger    *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		plannerUC: params.PlannerUC,
		logger:    params.Logger,
	}
}

// SaveRouteRequest represents the request body for committing a route
type SaveRouteRequest struct {
	Name                 string            `json:"name" validate:"required,max=100"`
	Color                string            `json:"color" validate:"omitempty,hexcolor"`
	Start                WaypointRequest   `json:"start"`
	End                  *WaypointRequest  `json:"end"`
	RoundTrip            bool              `json:"roundTrip"`
	Stops                []WaypointRequest `json:"stops" validate:"min=1,dive"`
	TotalDistanceMiles   float64           `json:"totalDistanceMiles" validate:"gte=0"`
	EstimatedTimeMinutes int               `json:"estimatedTimeMinutes" validate:"gte=0"`
	Profile              string            `json:"profile" validate:"profile"`
}

// ListRoutesResponse is a page of saved routes
type ListRoutesResponse struct {
	Routes []*entity.SavedRoute `json:"routes"`
	Count  int                  `json:"count"`
}

// CreateRoute handles POST /api/v1/routes
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	var req SaveRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	route, err := h.plannerUC.Commit(c.Request().Context(), &usecase.SaveRouteInput{
		Name:                 req.Name,
		Color:                req.Color,
		Start:                req.Start.toEntity(),
		End:                  toOptionalWaypoint(req.End),
		RoundTrip:            req.RoundTrip,
		Stops:                toWaypoints(req.Stops),
		TotalDistanceMiles:   req.TotalDistanceMiles,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
		Profile:              entity.Profile(req.Profile),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, route)
}

// GetRoute handles GET /api/v1/routes/:id
func (h *RouteHandler) GetRoute(c echo.Context) error {
	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid route ID")
	}

	route, err := h.plannerUC.GetRoute(c.Request().Context(), routeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route)
}

// ListRoutes handles GET /api/v1/routes
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	var limit, offset int
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit and offset must be integers")
	}

	routes, err := h.plannerUC.ListRoutes(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListRoutesResponse{
		Routes: routes,
		Count:  len(routes),
	})
}
