package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Data       DataConfig       `yaml:"data"`
	Simulation SimulationConfig `yaml:"simulation"`
	Log        LogConfig        `yaml:"log"`
	Sentry     SentryConfig     `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
}

type DataConfig struct {
	// Dir is where the persisted JSON records live (favorites, recent
	// searches, session).
	Dir string `yaml:"dir" envconfig:"DATA_DIR"`
}

// SimulationConfig controls the artificial latencies and the favorites
// refresh cadence. Values are duration strings ("1s", "300ms", "15m").
type SimulationConfig struct {
	FetchDelay      string `yaml:"fetch_delay" envconfig:"SIM_FETCH_DELAY"`
	SearchDelay     string `yaml:"search_delay" envconfig:"SIM_SEARCH_DELAY"`
	AuthDelay       string `yaml:"auth_delay" envconfig:"SIM_AUTH_DELAY"`
	RefreshInterval string `yaml:"refresh_interval" envconfig:"SIM_REFRESH_INTERVAL"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn" envconfig:"SENTRY_DSN"`
}

// ConfigProvider loads and validates a Config. The file provider is the only
// production implementation; tests substitute mocks.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// Load builds the config in three layers: built-in defaults, then the YAML
// file (missing file is fine), then environment variable overrides.
func (p *FileConfigProvider) Load() (*Config, error) {
	cfg := defaultConfig()

	if err := p.loadFromFile(cfg); err != nil {
		return nil, err
	}

	for _, section := range []any{
		&cfg.App, &cfg.Server, &cfg.Data, &cfg.Simulation, &cfg.Log, &cfg.Sentry,
	} {
		if err := envconfig.Process("", section); err != nil {
			return nil, errors.Wrap(err, "process environment variables")
		}
	}

	return cfg, nil
}

func (p *FileConfigProvider) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "parse YAML config")
	}
	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	if config.App.Name == "" {
		return errors.New("app.name is required")
	}
	if config.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if config.Data.Dir == "" {
		return errors.New("data.dir is required")
	}
	for name, value := range map[string]string{
		"simulation.fetch_delay":      config.Simulation.FetchDelay,
		"simulation.search_delay":     config.Simulation.SearchDelay,
		"simulation.auth_delay":       config.Simulation.AuthDelay,
		"simulation.refresh_interval": config.Simulation.RefreshInterval,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return errors.Wrapf(err, "%s is not a valid duration", name)
		}
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Data: DataConfig{
			Dir: "data",
		},
		Simulation: SimulationConfig{
			FetchDelay:      "1s",
			SearchDelay:     "300ms",
			AuthDelay:       "1s",
			RefreshInterval: "15m",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// NewConfig loads config/config.yaml with env overrides and validates it.
func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider("config/config.yaml"))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cfg, err := provider.Load()
	if err != nil {
		return nil, err
	}
	if err := provider.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// FetchDelay returns the simulated weather-fetch latency.
func (c *Config) FetchDelay() time.Duration {
	return parseDuration(c.Simulation.FetchDelay, time.Second)
}

// SearchDelay returns the simulated search latency.
func (c *Config) SearchDelay() time.Duration {
	return parseDuration(c.Simulation.SearchDelay, 300*time.Millisecond)
}

// AuthDelay returns the simulated login/register latency.
func (c *Config) AuthDelay() time.Duration {
	return parseDuration(c.Simulation.AuthDelay, time.Second)
}

// RefreshInterval returns the favorites warm-cache refresh cadence.
func (c *Config) RefreshInterval() time.Duration {
	return parseDuration(c.Simulation.RefreshInterval, 15*time.Minute)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
