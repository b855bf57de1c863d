package service

import (
	"context"

	"bikeroute/internal/domain/entity"
)

// RouteSavedEvent is published after a route is committed to the store.
type RouteSavedEvent struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	RouteID   string            `json:"route_id"`
	Name      string            `json:"name"`
	Profile   entity.Profile    `json:"profile"`
	Waypoints []entity.Waypoint `json:"waypoints"` // Travel order, closing point included
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishRouteSaved(ctx context.Context, event *RouteSavedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
