package pubsub

import (
	"bikeroute/internal/domain/constants"
	"bikeroute/internal/domain/service"
)

// routeSavedAttributes are the message attributes used for filtering and tracing.
func routeSavedAttributes(event *service.RouteSavedEvent) map[string]string {
	attributes := map[string]string{
		constants.AttrRouteID:   event.RouteID,
		constants.AttrEventType: constants.EventTypeRouteSaved,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return attributes
}
