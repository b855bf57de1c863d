package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"bikeroute/config"
	"bikeroute/internal/domain/entity"
	logs "bikeroute/internal/infra/log"
	"bikeroute/internal/infra/routing/ors"
	"bikeroute/internal/infra/routing/osrm"
	"bikeroute/internal/usecase"
	"bikeroute/internal/usecase/impl"
	"bikeroute/internal/util"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

type optimizeOptions struct {
	file        string
	roadRoute   bool
	profile     string
	skipPrimary bool
	geojsonPath string
}

type directionsOptions struct {
	file        string
	profile     string
	skipPrimary bool
	geojsonPath string
}

type toolkit struct {
	logger  *slog.Logger
	routing usecase.RoutingUsecase
	planner usecase.PlannerUsecase
}

// newToolkit builds the usecases without the route store or event publisher;
// the CLI only proposes and never commits.
func newToolkit() (*toolkit, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	routing := impl.NewRoutingService(impl.RoutingServiceParams{
		Config:   cfg,
		Logger:   logger,
		Primary:  ors.NewProvider(ors.Params{Config: cfg, Logger: logger}),
		Fallback: osrm.NewProvider(osrm.Params{Config: cfg, Logger: logger}),
	})

	planner := impl.NewPlannerService(impl.PlannerServiceParams{
		Optimizer: impl.NewOptimizerService(impl.OptimizerServiceParams{Config: cfg, Logger: logger}),
		Routing:   routing,
		Logger:    logger,
	})

	return &toolkit{logger: logger, routing: routing, planner: planner}, nil
}

func runOptimize(ctx context.Context, opts optimizeOptions) error {
	var req entity.OptimizeRequest
	if err := readJSON(opts.file, &req); err != nil {
		return err
	}

	kit, err := newToolkit()
	if err != nil {
		return err
	}

	started := time.Now()
	proposal, err := kit.planner.Propose(ctx, &usecase.ProposeInput{
		OptimizeRequest:  req,
		IncludeRoadRoute: opts.roadRoute,
		RouteOptions:     routeOptions(opts.profile, opts.skipPrimary),
	})
	if err != nil {
		return errors.Wrap(err, "optimize failed")
	}

	opt := proposal.Optimization
	fmt.Fprintf(os.Stderr, "Optimized %d stops in %s: %s (was %s, saved %.1f%%), about %s\n",
		len(opt.OptimizedOrder), time.Since(started).Round(time.Millisecond),
		util.FormatMiles(opt.TotalDistanceMiles), util.FormatMiles(opt.OriginalDistanceMiles), opt.DistanceSavingsPercent,
		util.FormatDuration(time.Duration(opt.EstimatedTimeMinutes)*time.Minute))

	if opts.roadRoute && !proposal.RoadRouteAvailable {
		fmt.Fprintln(os.Stderr, "Road route unavailable, showing the straight-line ordering only")
	}

	if proposal.Route != nil && opts.geojsonPath != "" {
		if err := writeGeoJSON(opts.geojsonPath, proposal.Route); err != nil {
			return err
		}
	}

	return printJSON(proposal)
}

func runDirections(ctx context.Context, opts directionsOptions) error {
	var waypoints []entity.Waypoint
	if err := readJSON(opts.file, &waypoints); err != nil {
		return err
	}

	kit, err := newToolkit()
	if err != nil {
		return err
	}

	route, err := kit.routing.GetRoute(ctx, waypoints, routeOptions(opts.profile, opts.skipPrimary))
	if err != nil {
		return errors.Wrap(err, "directions failed")
	}
	if route == nil {
		return errors.New("no routing provider returned a route")
	}

	fmt.Fprintf(os.Stderr, "Route from %s (%s): %s, about %s\n",
		route.Service, route.Profile, util.FormatMiles(route.DistanceMiles),
		util.FormatDuration(time.Duration(route.DurationSeconds*float64(time.Second))))

	if opts.geojsonPath != "" {
		if err := writeGeoJSON(opts.geojsonPath, route); err != nil {
			return err
		}
	}

	return printJSON(route)
}

func routeOptions(profile string, skipPrimary bool) usecase.RouteOptions {
	return usecase.RouteOptions{
		Profile:     entity.Profile(strings.ToLower(strings.TrimSpace(profile))),
		SkipPrimary: skipPrimary,
	}
}

// writeGeoJSON stores the route line as a single-feature collection.
func writeGeoJSON(path string, route *entity.RoutingResult) error {
	feature := geojson.NewFeature(route.Geometry)
	feature.Properties["service"] = string(route.Service)
	feature.Properties["profile"] = string(route.Profile)
	feature.Properties["distanceMiles"] = route.DistanceMiles
	feature.Properties["durationMinutes"] = route.DurationMinutes

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	payload, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode geojson")
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	fmt.Fprintf(os.Stderr, "Wrote %s (%s)\n", path, util.FormatBytes(int64(len(payload))))

	return nil
}

func readJSON(path string, out any) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}

	return nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return errors.Wrap(encoder.Encode(v), "failed to write output")
}
