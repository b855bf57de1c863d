package handler

import (
	"bikeroute/internal/domain/entity"
)

// WaypointRequest is a coordinate in a request body
type WaypointRequest struct {
	ID      string  `json:"id" validate:"max=100"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address" validate:"max=500"`
}

func (w WaypointRequest) toEntity() entity.Waypoint {
	return entity.Waypoint{ID: w.ID, Lat: w.Lat, Lng: w.Lng, Address: w.Address}
}

func toWaypoints(reqs []WaypointRequest) []entity.Waypoint {
	waypoints := make([]entity.Waypoint, len(reqs))
	for i, w := range reqs {
		waypoints[i] = w.toEntity()
	}

	return waypoints
}

func toOptionalWaypoint(req *WaypointRequest) *entity.Waypoint {
	if req == nil {
		return nil
	}
	w := req.toEntity()

	return &w
}
