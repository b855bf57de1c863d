// Package osrm calls an OSRM-compatible bicycle router. It needs no credential.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"bikeroute/config"
	"bikeroute/internal/domain/entity"
	"bikeroute/internal/domain/service"
	"bikeroute/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const (
	ProviderName = "osrm"

	defaultBaseURL    = "https://routing.openstreetmap.de/routed-bike"
	defaultProfile    = "bike"
	maxErrorBodyBytes = 2048
)

// Client is the fallback routing provider.
type Client struct {
	baseURL    string
	profile    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the OSRM client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider builds the client from routing configuration.
func NewProvider(params Params) *Client {
	var fallback config.FallbackProviderConfig
	if params.Config.Routing != nil {
		fallback = params.Config.Routing.Fallback
	}

	return NewClient(fallback.BaseURL, fallback.Profile, nil, params.Logger)
}

// NewClient creates an OSRM client.
func NewClient(baseURL, profile string, httpClient *http.Client, logger *slog.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if strings.TrimSpace(profile) == "" {
		profile = defaultProfile
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		profile:    profile,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) Name() string {
	return ProviderName
}

func (c *Client) Enabled() bool {
	return true
}

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64          `json:"distance"`
		Duration float64          `json:"duration"`
		Geometry geojson.Geometry `json:"geometry"`
	} `json:"routes"`
}

// Route requests a route over points in [lng, lat] order. OSRM servers host a
// single bicycle profile, so the cycling profile is not forwarded.
func (c *Client) Route(ctx context.Context, points []orb.Point, _ entity.Profile) (*service.ProviderRoute, error) {
	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson", c.baseURL, c.profile, formatCoordinates(points))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, c.fail(0, "", errors.WithStack(err))
	}
	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "[OSRM] Requesting route",
		slog.String("profile", c.profile),
		slog.Int("waypoints", len(points)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(0, "", errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, c.fail(resp.StatusCode, strings.TrimSpace(string(errBody)), nil)
	}

	var payload routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, c.fail(0, "", errors.Wrap(err, "decode response"))
	}

	if payload.Code != "Ok" {
		return nil, c.fail(0, "", errors.Errorf("osrm code %s: %s", payload.Code, payload.Message))
	}
	if len(payload.Routes) == 0 {
		return nil, c.fail(0, "", errors.New("response contains no routes"))
	}

	route := payload.Routes[0]
	line, ok := route.Geometry.Coordinates.(orb.LineString)
	if !ok {
		return nil, c.fail(0, "", errors.Errorf("unexpected geometry type %T", route.Geometry.Coordinates))
	}

	return &service.ProviderRoute{
		Geometry:        line,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}, nil
}

// formatCoordinates renders "lng,lat;lng,lat" with six decimals.
func formatCoordinates(points []orb.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%.6f,%.6f", p.Lon(), p.Lat())
	}

	return strings.Join(parts, ";")
}

func (c *Client) fail(status int, body string, err error) error {
	return &service.ProviderError{
		Provider:   ProviderName,
		StatusCode: status,
		Body:       body,
		Err:        err,
	}
}
