package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-dashboard", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, "data", config.Data.Dir)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Empty(t, config.Sentry.DSN)

	assert.Equal(t, time.Second, config.FetchDelay())
	assert.Equal(t, 300*time.Millisecond, config.SearchDelay())
	assert.Equal(t, time.Second, config.AuthDelay())
	assert.Equal(t, 15*time.Minute, config.RefreshInterval())

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())
}

func TestNewConfig_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
app:
  name: dash-test
  env: production
server:
  port: "9090"
data:
  dir: /tmp/dash-data
simulation:
  fetch_delay: 50ms
  refresh_interval: 1m
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "dash-test", config.App.Name)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "/tmp/dash-data", config.Data.Dir)
	assert.Equal(t, 50*time.Millisecond, config.FetchDelay())
	assert.Equal(t, time.Minute, config.RefreshInterval())
	assert.Equal(t, "debug", config.Log.Level)
	assert.True(t, config.IsProduction())

	// Untouched sections keep their defaults.
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, 300*time.Millisecond, config.SearchDelay())
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "env-app")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DATA_DIR", "/var/lib/dash")
	t.Setenv("SIM_FETCH_DELAY", "10ms")
	t.Setenv("LOG_LEVEL", "warn")

	config, err := NewConfigWithProvider(NewFileConfigProvider("nonexistent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-app", config.App.Name)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "7070", config.Server.Port)
	assert.Equal(t, "/var/lib/dash", config.Data.Dir)
	assert.Equal(t, 10*time.Millisecond, config.FetchDelay())
	assert.Equal(t, "warn", config.Log.Level)
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	valid := defaultConfig()
	assert.NoError(t, provider.Validate(valid))

	missingName := defaultConfig()
	missingName.App.Name = ""
	err := provider.Validate(missingName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	missingPort := defaultConfig()
	missingPort.Server.Port = ""
	err = provider.Validate(missingPort)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port is required")

	missingDir := defaultConfig()
	missingDir.Data.Dir = ""
	err = provider.Validate(missingDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.dir is required")

	badDuration := defaultConfig()
	badDuration.Simulation.FetchDelay = "soon"
	err = provider.Validate(badDuration)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation.fetch_delay")
}

func TestNewConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: ["), 0o644))

	_, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse YAML config")
}

func TestConfig_DurationFallbacks(t *testing.T) {
	config := defaultConfig()
	config.Simulation.FetchDelay = "garbage"
	config.Simulation.RefreshInterval = ""

	// Accessors fall back to sane defaults rather than failing mid-flight.
	assert.Equal(t, time.Second, config.FetchDelay())
	assert.Equal(t, 15*time.Minute, config.RefreshInterval())
}
