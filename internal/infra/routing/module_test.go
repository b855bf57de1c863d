package routing

import (
	"log/slog"
	"testing"

	"bikeroute/config"
	"bikeroute/internal/domain/service"
	"bikeroute/internal/infra/routing/ors"
	"bikeroute/internal/infra/routing/osrm"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type namedProviders struct {
	fx.In

	Primary  service.RoutingProvider `name:"primaryProvider"`
	Fallback service.RoutingProvider `name:"fallbackProvider"`
}

func TestModule_ProvidesNamedProviders(t *testing.T) {
	cfg := &config.Config{
		Routing: &config.RoutingConfig{
			Primary:  config.PrimaryProviderConfig{BaseURL: "http://ors.local", RequestsPerMinute: 40},
			Fallback: config.FallbackProviderConfig{BaseURL: "http://osrm.local"},
		},
	}

	var got namedProviders
	app := fxtest.New(t,
		fx.Supply(cfg, slog.Default()),
		Module,
		fx.Invoke(func(p namedProviders) { got = p }),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, ors.ProviderName, got.Primary.Name())
	assert.False(t, got.Primary.Enabled(), "primary needs an API key")
	assert.Equal(t, osrm.ProviderName, got.Fallback.Name())
	assert.True(t, got.Fallback.Enabled())
}
