package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// reported as the sentry server name
	ServiceName string `toml:"service_name"`
	// postgres (document store)
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis (sessions, rate limiting)
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// local device store, used for body progress entries
	DeviceStoreDir string `toml:"device_store_dir"`
	// size of the in-memory toggle cache, in MB
	ToggleCacheSizeMB int `toml:"toggle_cache_size_mb"`
	// "today" for workout completion is computed in this zone
	Timezone                    string   `toml:"timezone"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	MaxRequestBodyKB            int64    `toml:"max_request_body_kb"`
	CorsAllowedOrigins          []string `toml:"cors_allowed_origins"`
	SessionsCleanupInterval     duration `toml:"sessions_cleanup_interval"`
}

// duration lets toml values like "8h" decode into a time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Location resolves the configured timezone, UTC when none is set.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone [%s]: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("port must be set")
	}
	if c.DeviceStoreDir == "" {
		return errors.New("device_store_dir must be set")
	}
	if c.LogMaxSizeMB < 0 || c.LogMaxBackups < 0 || c.LogMaxAgeDays < 0 {
		return errors.New("log rotation limits cannot be negative")
	}
	if c.ServiceName == "" {
		c.ServiceName = "fitjournal-service"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.MaxRequestBodyKB <= 0 {
		c.MaxRequestBodyKB = 256
	}
	if c.SessionsCleanupInterval.Duration <= 0 {
		c.SessionsCleanupInterval.Duration = 8 * time.Hour
	}
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the toml file at path and returns the config of env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory config.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}
