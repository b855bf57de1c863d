// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bikeroute/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DirectionsHandler   *handler.DirectionsHandler
	OptimizationHandler *handler.OptimizationHandler
	RouteHandler        *handler.RouteHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	directionsHandler   *handler.DirectionsHandler
	optimizationHandler *handler.OptimizationHandler
	routeHandler        *handler.RouteHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		directionsHandler:   params.DirectionsHandler,
		optimizationHandler: params.OptimizationHandler,
		routeHandler:        params.RouteHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.POST("/directions", r.directionsHandler.GetDirections)
	apiV1.POST("/optimizations", r.optimizationHandler.Optimize)

	routesGroup := apiV1.Group("/routes")
	{
		routesGroup.POST("", r.routeHandler.CreateRoute)
		routesGroup.GET("", r.routeHandler.ListRoutes)
		routesGroup.GET("/:id", r.routeHandler.GetRoute)
	}
}
