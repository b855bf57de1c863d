package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// MetersPerMile is the conversion used for every imperial distance.
const MetersPerMile = 1609.34

// CoordinateOrderLngLat marks geometry stored as [lng, lat] pairs.
const CoordinateOrderLngLat = "lng,lat"

// RoutingService identifies which provider produced a route.
type RoutingService string

const (
	RoutingServicePrimary  RoutingService = "primary"
	RoutingServiceFallback RoutingService = "fallback"
)

// Profile is a cycling profile understood by the routing providers.
type Profile string

const (
	ProfileRoad     Profile = "road"
	ProfileMountain Profile = "mountain"
	ProfileRegular  Profile = "regular"
	ProfileElectric Profile = "electric"
)

// IsValid reports whether p is a known profile.
func (p Profile) IsValid() bool {
	switch p {
	case ProfileRoad, ProfileMountain, ProfileRegular, ProfileElectric:
		return true
	}

	return false
}

// RoutingResult is a road route over an ordered list of waypoints.
type RoutingResult struct {
	Geometry        orb.LineString `json:"geometry"`
	CoordinateOrder string         `json:"coordinateOrder"`
	DistanceMeters  float64        `json:"distanceMeters"`
	DistanceMiles   float64        `json:"distanceMiles"`
	DurationSeconds float64        `json:"durationSeconds"`
	DurationMinutes int            `json:"durationMinutes"`
	Service         RoutingService `json:"service"`
	Profile         Profile        `json:"profile"`
}

// NewRoutingResult fills in the derived imperial and minute fields.
func NewRoutingResult(geometry orb.LineString, meters, seconds float64, service RoutingService, profile Profile) *RoutingResult {
	return &RoutingResult{
		Geometry:        geometry,
		CoordinateOrder: CoordinateOrderLngLat,
		DistanceMeters:  meters,
		DistanceMiles:   MetersToMiles(meters),
		DurationSeconds: seconds,
		DurationMinutes: SecondsToMinutes(seconds),
		Service:         service,
		Profile:         profile,
	}
}

func MetersToMiles(meters float64) float64 {
	return meters / MetersPerMile
}

func SecondsToMinutes(seconds float64) int {
	return int(math.Round(seconds / 60))
}
