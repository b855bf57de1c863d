package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "origin", lat: 0, lng: 0},
		{name: "bounds inclusive", lat: 90, lng: -180},
		{name: "latitude too high", lat: 90.0001, lng: 0, wantErr: true},
		{name: "longitude too low", lat: 0, lng: -180.5, wantErr: true},
		{name: "NaN latitude", lat: math.NaN(), lng: 0, wantErr: true},
		{name: "infinite longitude", lat: 0, lng: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.lat, tt.lng, "point")
			if tt.wantErr {
				var coordErr *CoordinateError
				require.ErrorAs(t, err, &coordErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewRoutingResult_Units(t *testing.T) {
	result := NewRoutingResult(nil, 1019, 163, RoutingServicePrimary, ProfileRoad)

	assert.InDelta(t, 0.633, result.DistanceMiles, 0.001)
	assert.Equal(t, 3, result.DurationMinutes)
	assert.Equal(t, CoordinateOrderLngLat, result.CoordinateOrder)
}

func TestWaypointPoint_IsLngLat(t *testing.T) {
	p := Waypoint{Lat: 40.0, Lng: -105.0}.Point()

	assert.Equal(t, -105.0, p.Lon())
	assert.Equal(t, 40.0, p.Lat())
}

func TestTravelSequence(t *testing.T) {
	start := Waypoint{ID: "start"}
	end := &Waypoint{ID: "end"}
	stops := []Waypoint{{ID: "a"}, {ID: "b"}}

	ids := func(seq []Waypoint) []string {
		out := make([]string, len(seq))
		for i, w := range seq {
			out[i] = w.ID
		}

		return out
	}

	assert.Equal(t, []string{"start", "a", "b", "start"}, ids(TravelSequence(start, end, true, stops)))
	assert.Equal(t, []string{"start", "a", "b", "end"}, ids(TravelSequence(start, end, false, stops)))
	assert.Equal(t, []string{"start", "a", "b"}, ids(TravelSequence(start, nil, false, stops)))
}
