package entity

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Waypoint is a geographic point with an optional address and stable identifier.
type Waypoint struct {
	ID      string  `json:"id,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Point returns the waypoint in orb's [lng, lat] order.
func (w Waypoint) Point() orb.Point {
	return orb.Point{w.Lng, w.Lat}
}

// CoordinateError describes an out-of-range or non-finite coordinate.
type CoordinateError struct {
	Field   string
	Value   float64
	Message string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: %s (value: %.6f)", e.Field, e.Message, e.Value)
}

// ValidateCoordinate checks latitude in [-90, 90] and longitude in [-180, 180].
// field prefixes the reported field name.
func ValidateCoordinate(lat, lng float64, field string) error {
	if err := validateAxis(lat, 90, field+".lat"); err != nil {
		return err
	}

	return validateAxis(lng, 180, field+".lng")
}

func validateAxis(value, limit float64, field string) error {
	switch {
	case math.IsNaN(value):
		return &CoordinateError{Field: field, Value: value, Message: "NaN is not allowed"}
	case math.IsInf(value, 0):
		return &CoordinateError{Field: field, Value: value, Message: "infinite value is not allowed"}
	case value < -limit || value > limit:
		return &CoordinateError{Field: field, Value: value, Message: fmt.Sprintf("must be between %.0f and %.0f", -limit, limit)}
	}

	return nil
}

// Validate checks the waypoint coordinates.
func (w Waypoint) Validate(field string) error {
	return ValidateCoordinate(w.Lat, w.Lng, field)
}
