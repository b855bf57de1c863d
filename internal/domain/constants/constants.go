package constants

const EnvDevelop = "develop"

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attribute names
const (
	AttrRequestID = "request_id"
	AttrRouteID   = "route_id"
	AttrEventType = "event_type"
)

const EventTypeRouteSaved = "route.saved"
