package handler

import (
	"log/slog"
	"net/http"

	"bikeroute/internal/delivery/api/response"
	deliverycontext "bikeroute/internal/delivery/context"
	"bikeroute/internal/domain/entity"
	"bikeroute/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DirectionsHandlerParams holds dependencies for DirectionsHandler, injected by Fx.
type DirectionsHandlerParams struct {
	fx.In

	RoutingUC usecase.RoutingUsecase
	Logger    *slog.Logger
}

// DirectionsHandler serves road routes for an ordered list of waypoints
type DirectionsHandler struct {
	routingUC usecase.RoutingUsecase
	logger    *slog.Logger
}

// NewDirectionsHandler is the constructor for DirectionsHandler
func NewDirectionsHandler(params DirectionsHandlerParams) *DirectionsHandler {
	return &DirectionsHandler{
		routingUC: params.RoutingUC,
		logger:    params.Logger,
	}
}

// DirectionsRequest represents the request body for a road route. Waypoint
// count and coordinates are checked by the routing usecase.
type DirectionsRequest struct {
	Waypoints   []WaypointRequest `json:"waypoints" validate:"dive"`
	Profile     string            `json:"profile" validate:"profile"`
	SkipPrimary bool              `json:"skipPrimary"`
}

// DirectionsResponse carries the route when a provider produced one
type DirectionsResponse struct {
	Available bool                  `json:"available"`
	Route     *entity.RoutingResult `json:"route,omitempty"`
}

// GetDirections handles POST /api/v1/directions
func (h *DirectionsHandler) GetDirections(c echo.Context) error {
	var req DirectionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid directions input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	route, err := h.routingUC.GetRoute(ctx, toWaypoints(req.Waypoints), usecase.RouteOptions{
		Profile:     entity.Profile(req.Profile),
		SkipPrimary: req.SkipPrimary,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if route == nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[API] No routing provider produced a route",
			slog.Int("waypoints", len(req.Waypoints)),
		)
	}

	return response.Success(c, http.StatusOK, DirectionsResponse{
		Available: route != nil,
		Route:     route,
	})
}
