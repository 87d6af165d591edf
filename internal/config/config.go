package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prom_metrics_host"`
	PrometheusMetricsPort string `toml:"prom_metrics_port"`

	// the demo setup serves a single user, all data belongs to it
	DemoUserID string `toml:"demo_user_id"`

	LogEntryRateLimitAllowedPerMin int `toml:"log_entry_rate_limit_allowed_per_min"`

	// heatmap responses are cached in redis for this many minutes
	HeatmapCacheTTLMinutes int `toml:"heatmap_cache_ttl_minutes"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}

	if cfg.DemoUserID == "" {
		cfg.DemoUserID = "demo-user"
	}
	if cfg.LogEntryRateLimitAllowedPerMin <= 0 {
		cfg.LogEntryRateLimitAllowedPerMin = 30
	}
	if cfg.HeatmapCacheTTLMinutes <= 0 {
		cfg.HeatmapCacheTTLMinutes = 10
	}

	return cfg, nil
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		t.Development.Environment = "development"
		return t.Development, nil
	case "prod", "production":
		t.Production.Environment = "production"
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}
