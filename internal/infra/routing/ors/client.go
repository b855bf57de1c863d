// Package ors calls the OpenRouteService directions API for bicycle routes.
package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bikeroute/config"
	"bikeroute/internal/domain/entity"
	"bikeroute/internal/domain/service"
	"bikeroute/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	ProviderName = "openrouteservice"

	defaultBaseURL           = "https://api.openrouteservice.org"
	defaultRequestsPerMinute = 40
	maxErrorBodyBytes        = 2048
)

var profiles = map[entity.Profile]string{
	entity.ProfileRoad:     "cycling-road",
	entity.ProfileMountain: "cycling-mountain",
	entity.ProfileRegular:  "cycling-regular",
	entity.ProfileElectric: "cycling-electric",
}

// Client is the primary routing provider. It is disabled without an API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Params holds dependencies for the ORS client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider builds the client from routing configuration.
func NewProvider(params Params) *Client {
	var primary config.PrimaryProviderConfig
	if params.Config.Routing != nil {
		primary = params.Config.Routing.Primary
	}

	return NewClient(primary.BaseURL, primary.APIKey, primary.RequestsPerMinute, nil, params.Logger)
}

// NewClient creates an ORS client. A nil httpClient uses a client without
// its own timeout; callers bound each attempt through the context.
func NewClient(baseURL, apiKey string, requestsPerMinute int, httpClient *http.Client, logger *slog.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		logger:     logger,
	}
}

func (c *Client) Name() string {
	return ProviderName
}

func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type directionsRequest struct {
	Coordinates []orb.Point `json:"coordinates"`
}

// Route requests a GeoJSON route. points must already be in [lng, lat] order.
func (c *Client) Route(ctx context.Context, points []orb.Point, profile entity.Profile) (*service.ProviderRoute, error) {
	orsProfile, ok := profiles[profile]
	if !ok {
		return nil, c.fail(0, "", errors.Errorf("unsupported profile %q", profile))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, c.fail(0, "", errors.Wrap(err, "rate limiter"))
	}

	body, err := json.Marshal(directionsRequest{Coordinates: points})
	if err != nil {
		return nil, c.fail(0, "", errors.WithStack(err))
	}

	url := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, orsProfile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, c.fail(0, "", errors.WithStack(err))
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/geo+json, application/json")
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "[ORS] Requesting route",
		slog.String("profile", orsProfile),
		slog.Int("waypoints", len(points)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(0, "", errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, c.fail(resp.StatusCode, strings.TrimSpace(string(errBody)), nil)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(0, "", errors.Wrap(err, "read response"))
	}

	route, err := decodeRoute(payload)
	if err != nil {
		return nil, c.fail(0, "", err)
	}

	return route, nil
}

func decodeRoute(payload []byte) (*service.ProviderRoute, error) {
	fc, err := geojson.UnmarshalFeatureCollection(payload)
	if err != nil {
		return nil, errors.Wrap(err, "decode feature collection")
	}
	if len(fc.Features) == 0 {
		return nil, errors.New("response contains no route features")
	}

	feature := fc.Features[0]
	line, ok := feature.Geometry.(orb.LineString)
	if !ok {
		return nil, errors.Errorf("unexpected geometry type %T", feature.Geometry)
	}

	summary, _ := feature.Properties["summary"].(map[string]any)
	if summary == nil {
		return nil, errors.New("response route has no summary")
	}

	// ORS omits distance and duration for zero-length routes
	distance, _ := summary["distance"].(float64)
	duration, _ := summary["duration"].(float64)

	return &service.ProviderRoute{
		Geometry:        line,
		DistanceMeters:  distance,
		DurationSeconds: duration,
	}, nil
}

func (c *Client) fail(status int, body string, err error) error {
	return &service.ProviderError{
		Provider:   ProviderName,
		StatusCode: status,
		Body:       body,
		Err:        err,
	}
}
