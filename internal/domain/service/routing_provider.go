package service

import (
	"context"
	"fmt"
	"net/http"

	"bikeroute/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RoutingProvider fetches a bicycle route over points given in [lng, lat] order.
type RoutingProvider interface {
	// Name is used in logs.
	Name() string

	// Enabled reports whether the provider is configured to take requests.
	Enabled() bool

	Route(ctx context.Context, points []orb.Point, profile entity.Profile) (*ProviderRoute, error)
}

// ProviderRoute is the raw result of a provider call, in meters and seconds.
type ProviderRoute struct {
	Geometry        orb.LineString
	DistanceMeters  float64
	DurationSeconds float64
}

// ProviderError is a failed provider call. StatusCode is zero for transport
// and decoding failures.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}

	return e.Provider + ": request failed"
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// RateLimited reports whether the provider answered 429.
func (e *ProviderError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
