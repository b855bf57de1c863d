package entity

import (
	"time"

	"github.com/google/uuid"
)

const DefaultRouteColor = "#3B82F6"

// Proposal is an optimized ordering awaiting a commit decision.
type Proposal struct {
	ID                 uuid.UUID           `json:"id"`
	Optimization       *OptimizationResult `json:"optimization"`
	Start              Waypoint            `json:"start"`
	End                *Waypoint           `json:"end,omitempty"`
	RoundTrip          bool                `json:"roundTrip"`
	OrderedStops       []Waypoint          `json:"orderedStops"`
	Route              *RoutingResult      `json:"route,omitempty"`
	RoadRouteAvailable bool                `json:"roadRouteAvailable"`
}

// SavedRoute is a committed route held by the route store.
type SavedRoute struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Color                string     `json:"color"`
	Start                Waypoint   `json:"start"`
	End                  *Waypoint  `json:"end,omitempty"`
	RoundTrip            bool       `json:"roundTrip"`
	Stops                []Waypoint `json:"stops"`
	TotalDistanceMiles   float64    `json:"totalDistanceMiles"`
	EstimatedTimeMinutes int        `json:"estimatedTimeMinutes"`
	Profile              Profile    `json:"profile"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// Sequence returns start, stops and the closing point in travel order.
func (r *SavedRoute) Sequence() []Waypoint {
	return TravelSequence(r.Start, r.End, r.RoundTrip, r.Stops)
}

// TravelSequence lays out a tour: start, ordered stops, then the start again
// for a round trip or the fixed end when present.
func TravelSequence(start Waypoint, end *Waypoint, roundTrip bool, stops []Waypoint) []Waypoint {
	seq := make([]Waypoint, 0, len(stops)+2)
	seq = append(seq, start)
	seq = append(seq, stops...)

	switch {
	case roundTrip:
		seq = append(seq, start)
	case end != nil:
		seq = append(seq, *end)
	}

	return seq
}
