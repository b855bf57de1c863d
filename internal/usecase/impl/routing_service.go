package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"bikeroute/config"
	deliverycontext "bikeroute/internal/delivery/context"
	"bikeroute/internal/domain/entity"
	domainerrors "bikeroute/internal/domain/errors"
	"bikeroute/internal/domain/service"
	"bikeroute/internal/errors"
	"bikeroute/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	MinRouteWaypoints = 2
	MaxRouteWaypoints = 50

	// fallback defaults to keep routing functional when config is missing/invalid
	defaultAttemptTimeout   = 8 * time.Second
	defaultRateLimitBackoff = 2 * time.Second
	defaultCacheTTL         = 24 * time.Hour
	defaultProfile          = entity.ProfileRoad
)

type routingService struct {
	primary  service.RoutingProvider
	fallback service.RoutingProvider
	cache    service.RouteCache
	logger   *slog.Logger

	attemptTimeout   time.Duration
	rateLimitBackoff time.Duration
	cacheTTL         time.Duration
	defaultProfile   entity.Profile

	inflight singleflight.Group
	mu       sync.Mutex
	flights  map[string]*flight
}

// flight is the detached context of one shared provider request and the
// number of callers still waiting on it.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// RoutingServiceParams holds dependencies for the routing service, injected by Fx.
type RoutingServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Primary  service.RoutingProvider `name:"primaryProvider"`
	Fallback service.RoutingProvider `name:"fallbackProvider"`
	Cache    service.RouteCache      `optional:"true"`
}

// NewRoutingService creates a new routing service instance
func NewRoutingService(params RoutingServiceParams) usecase.RoutingUsecase {
	svc := &routingService{
		primary:          params.Primary,
		fallback:         params.Fallback,
		cache:            params.Cache,
		logger:           params.Logger,
		attemptTimeout:   defaultAttemptTimeout,
		rateLimitBackoff: defaultRateLimitBackoff,
		cacheTTL:         defaultCacheTTL,
		defaultProfile:   defaultProfile,
		flights:          make(map[string]*flight),
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	if params.Config != nil && params.Config.Routing != nil {
		cfg := params.Config.Routing
		if cfg.AttemptTimeout > 0 {
			svc.attemptTimeout = cfg.AttemptTimeout
		}
		if cfg.RateLimitBackoff > 0 {
			svc.rateLimitBackoff = cfg.RateLimitBackoff
		}
		if p := entity.Profile(strings.ToLower(cfg.DefaultProfile)); p.IsValid() {
			svc.defaultProfile = p
		}
	}
	if params.Config != nil && params.Config.Cache != nil && params.Config.Cache.TTL > 0 {
		svc.cacheTTL = params.Config.Cache.TTL
	}

	return svc
}

// GetRoute validates the waypoints, then tries the primary provider and the fallback in turn.
func (s *routingService) GetRoute(ctx context.Context, waypoints []entity.Waypoint, opts usecase.RouteOptions) (*entity.RoutingResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	profile := opts.Profile
	if profile == "" {
		profile = s.defaultProfile
	}
	if !profile.IsValid() {
		return nil, domainerrors.ErrUnknownProfile.WithDetails(fmt.Sprintf("profile %q", profile))
	}

	if err := validateRouteWaypoints(waypoints); err != nil {
		return nil, err
	}

	points := toLngLat(waypoints)
	key := routeCacheKey(points, profile, opts.SkipPrimary)

	if cached := s.cachedRoute(ctx, logger, key); cached != nil {
		return cached, nil
	}

	return s.sharedRoute(ctx, logger, key, points, profile, opts.SkipPrimary)
}

// sharedRoute runs one provider request per key. The request does not inherit
// any caller's cancellation; each caller stops waiting on its own ctx, and the
// request is canceled once no caller is left.
func (s *routingService) sharedRoute(ctx context.Context, logger *slog.Logger, key string, points []orb.Point, profile entity.Profile, skipPrimary bool) (*entity.RoutingResult, error) {
	f := s.joinFlight(ctx, key)
	defer s.leaveFlight(key, f)

	ch := s.inflight.DoChan(key, func() (any, error) {
		result, err := s.route(f.ctx, s.logger, points, profile, skipPrimary)
		if err == nil && result != nil {
			s.storeRoute(f.ctx, s.logger, key, result)
		}

		return result, err
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "routing canceled")
	case res := <-ch:
		if res.Err != nil {
			if ctx.Err() != nil {
				return nil, errors.Wrap(ctx.Err(), "routing canceled")
			}

			// The shared request ran out of time while this caller was still waiting
			logger.Warn("[Routing] No route available", slog.Any("error", res.Err))

			return nil, nil
		}
		if res.Shared {
			logger.Debug("[Routing] Shared in-flight route request", slog.String("key", key))
		}

		result, _ := res.Val.(*entity.RoutingResult)

		return result, nil
	}
}

func (s *routingService) joinFlight(ctx context.Context, key string) *flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[key]
	if !ok {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.flightTimeout())
		f = &flight{ctx: flightCtx, cancel: cancel}
		s.flights[key] = f
	}
	f.waiters++

	return f
}

func (s *routingService) leaveFlight(key string, f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}

	f.cancel()
	if s.flights[key] == f {
		delete(s.flights, key)
		// Later callers must not join a request that is being torn down
		s.inflight.Forget(key)
	}
}

// flightTimeout covers a primary attempt, its rate-limit retry and the fallback.
func (s *routingService) flightTimeout() time.Duration {
	return 3*s.attemptTimeout + s.rateLimitBackoff
}

func (s *routingService) route(ctx context.Context, logger *slog.Logger, points []orb.Point, profile entity.Profile, skipPrimary bool) (*entity.RoutingResult, error) {
	if !skipPrimary && s.primary != nil && s.primary.Enabled() {
		route, err := s.callPrimary(ctx, logger, points, profile)
		if err == nil {
			return entity.NewRoutingResult(route.Geometry, route.DistanceMeters, route.DurationSeconds, entity.RoutingServicePrimary, profile), nil
		}
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "routing canceled")
		}

		logger.Warn("[Routing] Primary provider failed, falling back",
			slog.String("provider", s.primary.Name()),
			slog.Any("error", err),
		)
	}

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "routing canceled")
	}

	if s.fallback == nil || !s.fallback.Enabled() {
		logger.Warn("[Routing] No fallback provider configured")

		return nil, nil
	}

	route, err := s.attempt(ctx, s.fallback, points, profile)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "routing canceled")
		}

		logger.Warn("[Routing] No route available",
			slog.String("provider", s.fallback.Name()),
			slog.Int("waypoints", len(points)),
			slog.Any("error", err),
		)

		return nil, nil
	}

	return entity.NewRoutingResult(route.Geometry, route.DistanceMeters, route.DurationSeconds, entity.RoutingServiceFallback, profile), nil
}

// callPrimary retries exactly once after a rate-limited answer.
func (s *routingService) callPrimary(ctx context.Context, logger *slog.Logger, points []orb.Point, profile entity.Profile) (*service.ProviderRoute, error) {
	route, err := s.attempt(ctx, s.primary, points, profile)
	if err == nil {
		return route, nil
	}

	var providerErr *service.ProviderError
	if !errors.As(err, &providerErr) || !providerErr.RateLimited() {
		return nil, err
	}

	logger.Info("[Routing] Primary provider rate limited, retrying once",
		slog.Duration("backoff", s.rateLimitBackoff),
	)

	timer := time.NewTimer(s.rateLimitBackoff)
	select {
	case <-ctx.Done():
		timer.Stop()

		return nil, errors.WithStack(ctx.Err())
	case <-timer.C:
	}

	return s.attempt(ctx, s.primary, points, profile)
}

func (s *routingService) attempt(ctx context.Context, provider service.RoutingProvider, points []orb.Point, profile entity.Profile) (*service.ProviderRoute, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()

	route, err := provider.Route(attemptCtx, points, profile)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, errors.Errorf("%s returned an empty route", provider.Name())
	}

	return route, nil
}

func (s *routingService) cachedRoute(ctx context.Context, logger *slog.Logger, key string) *entity.RoutingResult {
	if s.cache == nil {
		return nil
	}

	result, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("[Routing] Route cache read failed", slog.Any("error", err))

		return nil
	}

	return result
}

func (s *routingService) storeRoute(ctx context.Context, logger *slog.Logger, key string, result *entity.RoutingResult) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
		logger.Warn("[Routing] Route cache write failed", slog.Any("error", err))
	}
}

func validateRouteWaypoints(waypoints []entity.Waypoint) error {
	if len(waypoints) < MinRouteWaypoints || len(waypoints) > MaxRouteWaypoints {
		return domainerrors.ErrInvalidWaypoints.WithDetails(
			fmt.Sprintf("got %d waypoints, need %d to %d", len(waypoints), MinRouteWaypoints, MaxRouteWaypoints),
		)
	}

	for i, w := range waypoints {
		if err := w.Validate(fmt.Sprintf("waypoints[%d]", i)); err != nil {
			return domainerrors.ErrInvalidWaypoints.WithDetails(err.Error())
		}
	}

	return nil
}

// toLngLat swaps each waypoint into the [lng, lat] order both providers expect.
func toLngLat(waypoints []entity.Waypoint) []orb.Point {
	points := make([]orb.Point, len(waypoints))
	for i, w := range waypoints {
		points[i] = orb.Point{w.Lng, w.Lat}
	}

	return points
}

func routeCacheKey(points []orb.Point, profile entity.Profile, skipPrimary bool) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%t", profile, skipPrimary)
	for _, p := range points {
		fmt.Fprintf(h, "|%.6f,%.6f", p.Lon(), p.Lat())
	}

	return "route:" + hex.EncodeToString(h.Sum(nil))
}
