package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"routing": map[string]any{
			"primary": map[string]any{
				"apiKey":            "",
				"requestsPerMinute": 40,
			},
			"rateLimitBackoff": "2s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "ROUTING_PRIMARY_APIKEY", want: "routing.primary.apiKey"},
		{envKey: "ROUTING_PRIMARY_REQUESTSPERMINUTE", want: "routing.primary.requestsPerMinute"},
		{envKey: "ROUTING_RATELIMITBACKOFF", want: "routing.rateLimitBackoff"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
env:
  env: develop
  log:
    level: info
routing:
  primary:
    baseUrl: https://api.openrouteservice.org
    apiKey: ""
  attemptTimeout: 8s
  rateLimitBackoff: 2s
optimizer:
  averageSpeedKmh: 16
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routes.yaml"), []byte(yamlContent), 0o600))

	t.Chdir(dir)
	t.Setenv("ROUTING_PRIMARY_APIKEY", "secret-key")
	t.Setenv("ROUTING_RATELIMITBACKOFF", "1500ms")

	cfg, err := LoadWithEnv[Config]("routes")
	require.NoError(t, err)
	require.NotNil(t, cfg.Routing)

	assert.Equal(t, "secret-key", cfg.Routing.Primary.APIKey)
	assert.Equal(t, 1500*time.Millisecond, cfg.Routing.RateLimitBackoff)
	assert.Equal(t, 8*time.Second, cfg.Routing.AttemptTimeout)
	assert.Equal(t, "https://api.openrouteservice.org", cfg.Routing.Primary.BaseURL)
	require.NotNil(t, cfg.Optimizer)
	assert.InDelta(t, 16.0, cfg.Optimizer.AverageSpeedKmh, 1e-9)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}
