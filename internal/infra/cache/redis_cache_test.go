package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"bikeroute/config"
	"bikeroute/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/paulmach/orb"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisRouteCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisRouteCache(client, slog.Default()).(*redisRouteCache)
}

func sampleResult() *entity.RoutingResult {
	geometry := orb.LineString{{-105.2705, 40.015}, {-105.2519, 40.0274}}

	return entity.NewRoutingResult(geometry, 1019, 163, entity.RoutingServicePrimary, entity.ProfileRoad)
}

func TestRedisRouteCache_Miss(t *testing.T) {
	_, c := newTestCache(t)

	result, err := c.Get(context.Background(), "route:missing")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestRedisRouteCache_RoundTrip(t *testing.T) {
	_, c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "route:abc", sampleResult(), time.Hour))

	got, err := c.Get(ctx, "route:abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleResult(), got)
}

func TestRedisRouteCache_Expires(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "route:ttl", sampleResult(), time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("route:ttl"))

	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, "route:ttl")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisRouteCache_CorruptEntryIsMiss(t *testing.T) {
	mr, c := newTestCache(t)
	require.NoError(t, mr.Set("route:bad", "{not json"))

	got, err := c.Get(context.Background(), "route:bad")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisRouteCache_SetNilIsIgnored(t *testing.T) {
	mr, c := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), "route:nil", nil, time.Minute))
	assert.False(t, mr.Exists("route:nil"))
}

func TestRedisRouteCache_ServerDown(t *testing.T) {
	mr, c := newTestCache(t)
	mr.Close()

	_, err := c.Get(context.Background(), "route:any")
	assert.Error(t, err)
}

func TestNewRouteCache_Disabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	c, err := NewRouteCache(CacheParams{Lc: lc, Config: &config.Config{}, Logger: slog.Default()})
	require.NoError(t, err)
	assert.IsType(t, noopRouteCache{}, c)

	got, err := c.Get(context.Background(), "route:x")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewRouteCache_MissingAddr(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Cache: &config.CacheConfig{Enabled: true}}

	_, err := NewRouteCache(CacheParams{Lc: lc, Config: cfg, Logger: slog.Default()})
	assert.Error(t, err)
}

func TestNewRouteCache_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Cache: &config.CacheConfig{Enabled: true, Addr: mr.Addr()}}

	c, err := NewRouteCache(CacheParams{Lc: lc, Config: cfg, Logger: slog.Default()})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, c.Set(context.Background(), "route:live", sampleResult(), time.Hour))
	assert.True(t, mr.Exists("route:live"))
	lc.RequireStop()
}
