// Package routing wires the road routing providers into Fx.
package routing

import (
	"bikeroute/internal/domain/service"
	"bikeroute/internal/infra/routing/ors"
	"bikeroute/internal/infra/routing/osrm"

	"go.uber.org/fx"
)

// Module provides the primary (OpenRouteService) and fallback (OSRM)
// providers under the names the routing service expects
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			ors.NewProvider,
			fx.As(new(service.RoutingProvider)),
			fx.ResultTags(`name:"primaryProvider"`),
		),
		fx.Annotate(
			osrm.NewProvider,
			fx.As(new(service.RoutingProvider)),
			fx.ResultTags(`name:"fallbackProvider"`),
		),
	),
)
