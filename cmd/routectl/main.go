package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - optimize:   Order the stops in a JSON file, optionally with a road route
// - directions: Route through the waypoints in a JSON file

func main() {
	_ = godotenv.Load()

	optimizeCmd := flag.NewFlagSet("optimize", flag.ExitOnError)
	directionsCmd := flag.NewFlagSet("directions", flag.ExitOnError)

	// optimize parameters
	optimizeFile := optimizeCmd.String("file", "", "JSON file with start, end, roundTrip and stops")
	optimizeRoad := optimizeCmd.Bool("include-road-route", false, "Fetch the road route for the optimized order")
	optimizeProfile := optimizeCmd.String("profile", "", "Cycling profile (road, mountain, regular, electric)")
	optimizeSkip := optimizeCmd.Bool("skip-primary", false, "Use the fallback provider only")
	optimizeGeoJSON := optimizeCmd.String("geojson", "", "Write the road route as GeoJSON to this path")

	// directions parameters
	directionsFile := directionsCmd.String("file", "", "JSON file with an array of waypoints")
	directionsProfile := directionsCmd.String("profile", "", "Cycling profile (road, mountain, regular, electric)")
	directionsSkip := directionsCmd.Bool("skip-primary", false, "Use the fallback provider only")
	directionsGeoJSON := directionsCmd.String("geojson", "", "Write the route as GeoJSON to this path")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := routectlFlags{
		Optimize: optimizeFlags{
			cmd:         optimizeCmd,
			file:        optimizeFile,
			roadRoute:   optimizeRoad,
			profile:     optimizeProfile,
			skipPrimary: optimizeSkip,
			geojson:     optimizeGeoJSON,
		},
		Directions: directionsFlags{
			cmd:         directionsCmd,
			file:        directionsFile,
			profile:     directionsProfile,
			skipPrimary: directionsSkip,
			geojson:     directionsGeoJSON,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type routectlFlags struct {
	Optimize   optimizeFlags
	Directions directionsFlags
}

type optimizeFlags struct {
	cmd         *flag.FlagSet
	file        *string
	roadRoute   *bool
	profile     *string
	skipPrimary *bool
	geojson     *string
}

type directionsFlags struct {
	cmd         *flag.FlagSet
	file        *string
	profile     *string
	skipPrimary *bool
	geojson     *string
}

func runSubcommand(ctx context.Context, flags *routectlFlags) error {
	switch os.Args[1] {
	case "optimize":
		return handleOptimize(ctx, flags)
	case "directions":
		return handleDirections(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleOptimize(ctx context.Context, flags *routectlFlags) error {
	if err := flags.Optimize.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse optimize flags")
	}

	if *flags.Optimize.file == "" {
		return errors.New("--file flag is required for optimize command")
	}

	return runOptimize(ctx, optimizeOptions{
		file:        *flags.Optimize.file,
		roadRoute:   *flags.Optimize.roadRoute,
		profile:     *flags.Optimize.profile,
		skipPrimary: *flags.Optimize.skipPrimary,
		geojsonPath: *flags.Optimize.geojson,
	})
}

func handleDirections(ctx context.Context, flags *routectlFlags) error {
	if err := flags.Directions.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse directions flags")
	}

	if *flags.Directions.file == "" {
		return errors.New("--file flag is required for directions command")
	}

	return runDirections(ctx, directionsOptions{
		file:        *flags.Directions.file,
		profile:     *flags.Directions.profile,
		skipPrimary: *flags.Directions.skipPrimary,
		geojsonPath: *flags.Directions.geojson,
	})
}

func printUsage() {
	fmt.Println(`Bicycle Route Tool

Usage:
  routectl <command> [options]

Commands:
  optimize    Order stops to shorten the ride
  directions  Fetch a road route through ordered waypoints

Examples:
  # Optimize a stop list and fetch the road route for the result
  routectl optimize --file stops.json --include-road-route

  # Route through waypoints using the OSRM fallback only
  routectl directions --file waypoints.json --profile mountain --skip-primary

  # Save the route geometry for a map viewer
  routectl directions --file waypoints.json --geojson route.geojson

Routing providers are configured through config/config.yaml and environment
variables such as ROUTING_PRIMARY_APIKEY.`)
}
