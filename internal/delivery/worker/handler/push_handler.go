package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bikeroute/config"
	deliverycontext "bikeroute/internal/delivery/context"
	"bikeroute/internal/domain/constants"
	domainerrors "bikeroute/internal/domain/errors"
	"bikeroute/internal/domain/service"
	"bikeroute/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler consumes route saved events and warms the route cache with
// the road route of each saved sequence
type PushHandler struct {
	verifyToken func(*http.Request) error
	logger      *slog.Logger
	routingUC   usecase.RoutingUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	RoutingUC usecase.RoutingUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:    params.Logger,
		routingUC: params.RoutingUC,
	}

	if params.Config.Worker != nil && params.Config.Worker.VerifyPushAuth {
		h.verifyToken = verifyPubSubToken
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages. Anything that can never
// succeed is acknowledged with 200 so Pub/Sub does not redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken != nil {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	if eventType := pushMsg.Message.Attributes[constants.AttrEventType]; eventType != "" && eventType != constants.EventTypeRouteSaved {
		h.logger.Info("[Worker] Ignoring unsupported event", slog.String("event_type", eventType))

		return c.NoContent(http.StatusOK)
	}

	event, err := decodeRouteSavedEvent(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode route saved event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing route saved event",
		slog.String("route_id", event.RouteID),
		slog.Int("waypoints", len(event.Waypoints)),
	)

	route, err := h.routingUC.GetRoute(ctx, event.Waypoints, usecase.RouteOptions{Profile: event.Profile})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			reqLogger.Warn("[Worker] Saved route is not routable",
				slog.String("route_id", event.RouteID),
				slog.String("reason", appErr.Details()),
			)

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to warm route",
			slog.String("route_id", event.RouteID),
			slog.Any("error", err),
		)

		// 503 asks Pub/Sub to redeliver later
		return c.NoContent(http.StatusServiceUnavailable)
	}

	if route == nil {
		reqLogger.Warn("[Worker] No provider produced a route", slog.String("route_id", event.RouteID))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Route warmed",
		slog.String("route_id", event.RouteID),
		slog.String("service", string(route.Service)),
		slog.Float64("distance_miles", route.DistanceMiles),
	)

	return c.NoContent(http.StatusOK)
}

func decodeRouteSavedEvent(encoded string) (*service.RouteSavedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.RouteSavedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal route saved event")
	}
	if event.RouteID == "" {
		return nil, errors.New("route saved event without route_id")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the
// request context, and generates one as a last resort
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RouteSavedEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the Google-signed JWT on push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is this endpoint's URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
