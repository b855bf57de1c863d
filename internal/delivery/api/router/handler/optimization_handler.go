package handler

import (
	"log/slog"
	"net/http"

	"bikeroute/internal/delivery/api/response"
	"bikeroute/internal/domain/entity"
	"bikeroute/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OptimizationHandlerParams holds dependencies for OptimizationHandler, injected by Fx.
type OptimizationHandlerParams struct {
	fx.In

	PlannerUC usecase.PlannerUsecase
	Logger    *slog.Logger
}

// OptimizationHandler proposes visiting orders
type OptimizationHandler struct {
	plannerUC usecase.PlannerUsecase
	logger    *slog.Logger
}

// NewOptimizationHandler is the constructor for OptimizationHandler
func NewOptimizationHandler(params OptimizationHandlerParams) *OptimizationHandler {
	return &OptimizationHandler{
		plannerUC: params.PlannerUC,
		logger:    params.Logger,
	}
}

// OptimizeRequest represents the request body for a stop ordering proposal
type OptimizeRequest struct {
	Start            WaypointRequest   `json:"start"`
	End              *WaypointRequest  `json:"end"`
	RoundTrip        bool              `json:"roundTrip"`
	Stops            []WaypointRequest `json:"stops" validate:"dive"`
	IncludeRoadRoute bool              `json:"includeRoadRoute"`
	Profile          string            `json:"profile" validate:"profile"`
	SkipPrimary      bool              `json:"skipPrimary"`
}

// Optimize handles POST /api/v1/optimizations
func (h *OptimizationHandler) Optimize(c echo.Context) error {
	var req OptimizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid optimization input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	proposal, err := h.plannerUC.Propose(c.Request().Context(), &usecase.ProposeInput{
		OptimizeRequest: entity.OptimizeRequest{
			Start:     req.Start.toEntity(),
			End:       toOptionalWaypoint(req.End),
			RoundTrip: req.RoundTrip,
			Stops:     toWaypoints(req.Stops),
		},
		IncludeRoadRoute: req.IncludeRoadRoute,
		RouteOptions: usecase.RouteOptions{
			Profile:     entity.Profile(req.Profile),
			SkipPrimary: req.SkipPrimary,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, proposal)
}
