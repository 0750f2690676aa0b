// Package config defines service configuration and its loading order:
// defaults, then an optional YAML file, then SCOREBOARD_-prefixed
// environment variables.
package config

import "time"

// Config holds runtime configuration for the server.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// Provider selects the upstream score source: "espn" or "fixture".
	Provider string `koanf:"provider"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `koanf:"log_format"`

	// ESPNBaseURL overrides the upstream scoreboard API root.
	ESPNBaseURL string `koanf:"espn_base_url"`
	// ESPNTimeout bounds each upstream HTTP request.
	ESPNTimeout time.Duration `koanf:"espn_timeout"`

	// FetchLimit caps events requested per general partition fetch.
	FetchLimit int `koanf:"fetch_limit"`
	// FetchTimeout bounds one partition fetch inside an aggregate.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`

	// RetryAttempts is the total tries per upstream call.
	RetryAttempts int `koanf:"retry_attempts"`
	// RetryBackoff is the base delay between tries.
	RetryBackoff time.Duration `koanf:"retry_backoff"`

	// CacheDir, when set, persists cache entries to disk so restarts and
	// sibling processes share warm state. Empty keeps the cache in memory.
	CacheDir string `koanf:"cache_dir"`

	// MetricsEnabled turns the telemetry pipeline on.
	MetricsEnabled bool `koanf:"metrics_enabled"`
	// MetricsPort serves the Prometheus scrape endpoint.
	MetricsPort string `koanf:"metrics_port"`
	// OtelServiceName names this process in exported telemetry.
	OtelServiceName string `koanf:"otel_service_name"`
	// OtelEndpoint enables the OTLP push exporter when non-empty.
	OtelEndpoint string `koanf:"otel_endpoint"`
	// OtelInsecure disables TLS on the OTLP connection.
	OtelInsecure bool `koanf:"otel_insecure"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Addr:            ":8000",
		Provider:        "espn",
		LogLevel:        "info",
		LogFormat:       "text",
		ESPNTimeout:     10 * time.Second,
		FetchLimit:      50,
		FetchTimeout:    8 * time.Second,
		RetryAttempts:   2,
		RetryBackoff:    150 * time.Millisecond,
		MetricsEnabled:  true,
		MetricsPort:     "9090",
		OtelServiceName: "scoreboard-service",
		OtelInsecure:    true,
	}
}
