package impl

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"bikeroute/config"
	"bikeroute/internal/domain/entity"
	"bikeroute/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptimizer() usecase.OptimizerUsecase {
	return NewOptimizerService(OptimizerServiceParams{
		Config: &config.Config{
			Optimizer: &config.OptimizerConfig{AverageSpeedKmh: 16, MaxImprovementPasses: 100},
		},
	})
}

func stop(id string, lat, lng float64) entity.Waypoint {
	return entity.Waypoint{ID: id, Lat: lat, Lng: lng}
}

func TestNewOptimizerService_ZeroConfig(t *testing.T) {
	svc := NewOptimizerService(OptimizerServiceParams{Config: &config.Config{}}).(*optimizerService)

	assert.InDelta(t, defaultAverageSpeedKmh, svc.averageSpeedKmh, 1e-9)
	assert.Equal(t, defaultMaxImprovementPasses, svc.maxPasses)
}

func TestOptimizerService_RoundTripOnALine(t *testing.T) {
	req := &entity.OptimizeRequest{
		Start:     stop("A", 0, 0),
		RoundTrip: true,
		Stops:     []entity.Waypoint{stop("B", 0, 1), stop("C", 0, 2)},
	}

	result, err := newTestOptimizer().Optimize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "C"}, result.OptimizedOrder)
	assert.Zero(t, result.DistanceSavingsMiles)
	assert.Zero(t, result.DistanceSavingsPercent)
	assert.False(t, result.Improved)
	assert.InDelta(t, result.OriginalDistanceMiles, result.TotalDistanceMiles, 1e-9)
	assert.Less(t, result.DistanceFromStartMiles["B"], result.DistanceFromStartMiles["C"])
}

func TestOptimizerService_NoOpForZeroOrOneStop(t *testing.T) {
	end := stop("E", 0, 1)

	tests := []struct {
		name      string
		req       *entity.OptimizeRequest
		wantOrder []string
	}{
		{
			name:      "no stops open path",
			req:       &entity.OptimizeRequest{Start: stop("S", 0, 0)},
			wantOrder: []string{},
		},
		{
			name:      "no stops fixed end",
			req:       &entity.OptimizeRequest{Start: stop("S", 0, 0), End: &end},
			wantOrder: []string{},
		},
		{
			name:      "single stop round trip",
			req:       &entity.OptimizeRequest{Start: stop("S", 0, 0), RoundTrip: true, Stops: []entity.Waypoint{stop("X", 1, 1)}},
			wantOrder: []string{"X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestOptimizer().Optimize(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOrder, result.OptimizedOrder)
			assert.Zero(t, result.DistanceSavingsMiles)
			assert.Zero(t, result.TimeSavingsMinutes)
			assert.InDelta(t, result.OriginalDistanceMiles, result.TotalDistanceMiles, 1e-12)
		})
	}
}

func TestOptimizerService_ImprovesZigZag(t *testing.T) {
	req := &entity.OptimizeRequest{
		Start: stop("S", 0, 0),
		Stops: []entity.Waypoint{stop("far", 0, 3), stop("near", 0, 1), stop("mid", 0, 2)},
	}

	result, err := newTestOptimizer().Optimize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"near", "mid", "far"}, result.OptimizedOrder)
	assert.True(t, result.Improved)
	// Original walks 3 + 2 + 1 degrees, optimized walks 3
	assert.InDelta(t, 50.0, result.DistanceSavingsPercent, 0.01)
	assert.InDelta(t, result.OriginalDistanceMiles-result.TotalDistanceMiles, result.DistanceSavingsMiles, 1e-9)
	assert.Greater(t, result.TimeSavingsMinutes, 0)
	assert.InDelta(t, result.TotalDistanceMiles, result.DistanceFromStartMiles["far"], 1e-9)
}

func TestOptimizerService_FixedEndStaysLast(t *testing.T) {
	end := stop("end", 0, 10)
	req := &entity.OptimizeRequest{
		Start: stop("start", 0, 0),
		End:   &end,
		Stops: []entity.Waypoint{stop("nine", 0, 9), stop("one", 0, 1), stop("five", 0, 5)},
	}

	result, err := newTestOptimizer().Optimize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "five", "nine"}, result.OptimizedOrder)

	// A straight run from start to end is the shortest possible tour
	direct := newTour(req.Start, nil, &end, false).length(nil)
	assert.InDelta(t, entity.MetersToMiles(direct), result.TotalDistanceMiles, 1e-6)
}

func TestOptimizerService_RoundTripIgnoresEnd(t *testing.T) {
	bogusEnd := stop("end", 95, 0)
	req := &entity.OptimizeRequest{
		Start:     stop("start", 0, 0),
		End:       &bogusEnd,
		RoundTrip: true,
		Stops:     []entity.Waypoint{stop("a", 0, 1), stop("b", 1, 1)},
	}

	result, err := newTestOptimizer().Optimize(context.Background(), req)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, result.OptimizedOrder)
}

func TestOptimizerService_DuplicateCoordinates(t *testing.T) {
	req := &entity.OptimizeRequest{
		Start: stop("S", 10, 10),
		Stops: []entity.Waypoint{
			stop("a", 10.5, 10.5), stop("b", 10.5, 10.5), stop("c", 10.5, 10.5),
			stop("d", 10, 10), stop("e", 10.5, 10.5),
		},
	}

	result, err := newTestOptimizer().Optimize(context.Background(), req)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, result.OptimizedOrder)
	assert.Equal(t, "d", result.OptimizedOrder[0], "stop on top of the start is visited first")
	assert.Zero(t, result.DistanceFromStartMiles["d"])
}

func TestOptimizerService_TiesBrokenByInputIndex(t *testing.T) {
	req := &entity.OptimizeRequest{
		Start: stop("S", 0, 0),
		Stops: []entity.Waypoint{stop("east", 0, 1), stop("west", 0, -1)},
	}

	result, err := newTestOptimizer().Optimize(context.Background(), req)
	require.NoError(t, err)

	// Both orders are equally long, so the input order is kept
	assert.Equal(t, []string{"east", "west"}, result.OptimizedOrder)
	assert.False(t, result.Improved)
}

func TestOptimizerService_AssignsIndexIDs(t *testing.T) {
	req := &entity.OptimizeRequest{
		Start: stop("", 0, 0),
		Stops: []entity.Waypoint{{Lat: 0, Lng: 2}, {Lat: 0, Lng: 1}},
	}

	result, err := newTestOptimizer().Optimize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "0"}, result.OptimizedOrder)
}

func TestOptimizerService_EstimatedTime(t *testing.T) {
	req := &entity.OptimizeRequest{
		Start:     stop("S", 0, 0),
		RoundTrip: true,
		Stops:     []entity.Waypoint{stop("X", 0, 0.1)},
	}

	result, err := newTestOptimizer().Optimize(context.Background(), req)
	require.NoError(t, err)

	// 2 * 11.13 km at 16 km/h
	assert.Equal(t, 83, result.EstimatedTimeMinutes)
	assert.Equal(t, result.EstimatedTimeMinutes, result.OriginalEstimatedTimeMinutes)
}

func TestOptimizerService_Validation(t *testing.T) {
	badEnd := stop("end", 0, 200)

	tests := []struct {
		name     string
		req      *entity.OptimizeRequest
		wantCode string
	}{
		{name: "nil request", req: nil, wantCode: "VALIDATION_FAILED"},
		{name: "bad start", req: &entity.OptimizeRequest{Start: stop("S", -91, 0)}, wantCode: "INVALID_START"},
		{name: "bad end", req: &entity.OptimizeRequest{Start: stop("S", 0, 0), End: &badEnd}, wantCode: "INVALID_END"},
		{
			name:     "bad end ignored on round trip",
			req:      &entity.OptimizeRequest{Start: stop("S", -91, 0), End: &badEnd, RoundTrip: true},
			wantCode: "INVALID_START",
		},
		{
			name:     "bad stop",
			req:      &entity.OptimizeRequest{Start: stop("S", 0, 0), Stops: []entity.Waypoint{stop("a", 0, 181)}},
			wantCode: "INVALID_STOPS",
		},
		{
			name:     "duplicate ids",
			req:      &entity.OptimizeRequest{Start: stop("S", 0, 0), Stops: []entity.Waypoint{stop("a", 0, 1), stop("a", 0, 2)}},
			wantCode: "INVALID_STOPS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestOptimizer().Optimize(context.Background(), tt.req)
			assert.Nil(t, result)
			assertAppErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestOptimizerService_PermutationAndIdempotence(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	stops := make([]entity.Waypoint, 30)
	for i := range stops {
		stops[i] = stop(fmt.Sprintf("stop-%02d", i), 39.9+rng.Float64()*0.3, -105.3+rng.Float64()*0.3)
	}

	for _, roundTrip := range []bool{false, true} {
		t.Run(fmt.Sprintf("roundTrip=%t", roundTrip), func(t *testing.T) {
			svc := newTestOptimizer()
			req := &entity.OptimizeRequest{Start: stop("depot", 40.0, -105.2), RoundTrip: roundTrip, Stops: stops}

			first, err := svc.Optimize(context.Background(), req)
			require.NoError(t, err)

			ids := make([]string, len(stops))
			for i, s := range stops {
				ids[i] = s.ID
			}
			got := slices.Clone(first.OptimizedOrder)
			slices.Sort(got)
			assert.Equal(t, ids, got, "optimized order must be a permutation of the input")

			assert.LessOrEqual(t, first.TotalDistanceMiles, first.OriginalDistanceMiles)
			assert.GreaterOrEqual(t, first.DistanceSavingsMiles, 0.0)
			assert.Len(t, first.DistanceFromStartMiles, len(stops))

			byID := make(map[string]entity.Waypoint, len(stops))
			for _, s := range stops {
				byID[s.ID] = s
			}
			reordered := make([]entity.Waypoint, len(stops))
			for i, id := range first.OptimizedOrder {
				reordered[i] = byID[id]
			}

			second, err := svc.Optimize(context.Background(), &entity.OptimizeRequest{
				Start: req.Start, RoundTrip: roundTrip, Stops: reordered,
			})
			require.NoError(t, err)

			assert.Equal(t, first.OptimizedOrder, second.OptimizedOrder)
			assert.InDelta(t, 0.0, second.DistanceSavingsMiles, 1e-9)
		})
	}
}

func TestTour_TwoOptRespectsPassCap(t *testing.T) {
	start := stop("S", 0, 0)
	stops := []entity.Waypoint{stop("a", 0, 4), stop("b", 0, 1), stop("c", 0, 3), stop("d", 0, 2)}
	tr := newTour(start, stops, nil, false)

	_, passes := tr.twoOpt(context.Background(), tr.identity(), 1)
	assert.Equal(t, 1, passes)

	order, _ := tr.twoOpt(context.Background(), tr.identity(), 100)
	assert.LessOrEqual(t, tr.length(order), tr.length(tr.identity()))
}
