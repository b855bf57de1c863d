package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bikeroute/config"
	"bikeroute/internal/domain/entity"
	"bikeroute/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func routeSavedEvent() *service.RouteSavedEvent {
	return &service.RouteSavedEvent{
		RequestID: "req-7",
		RouteID:   "0190f1f4-5a43-7c2e-9d1b-6c8e4f2a1b3c",
		Name:      "Loop",
		Profile:   entity.ProfileRoad,
		Waypoints: []entity.Waypoint{
			{ID: "home", Lat: 40.015, Lng: -105.2705},
			{ID: "a", Lat: 40.0274, Lng: -105.2519},
			{ID: "home", Lat: 40.015, Lng: -105.2705},
		},
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var got PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	require.NoError(t, publisher.PublishRouteSaved(context.Background(), routeSavedEvent()))

	assert.Equal(t, "req-7", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "route.saved", got.Message.Attributes["event_type"])
	assert.Equal(t, "req-7", got.Message.Attributes["request_id"])
	assert.NotEmpty(t, got.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var event service.RouteSavedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *routeSavedEvent(), event)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	assert.Error(t, publisher.PublishRouteSaved(context.Background(), routeSavedEvent()))
}

func TestRouteSavedAttributes_OmitEmptyRequestID(t *testing.T) {
	event := routeSavedEvent()
	event.RequestID = ""

	attributes := routeSavedAttributes(event)
	assert.NotContains(t, attributes, "request_id")
	assert.Equal(t, event.RouteID, attributes["route_id"])
}

func TestNewEventPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.Default(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: slog.Default()}

	assert.NoError(t, publisher.PublishRouteSaved(context.Background(), routeSavedEvent()))
	assert.NoError(t, publisher.Close())
}
