// Package config loads and validates the dashboard's configuration. See Load
// for the layering.
package config

import (
	"time"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Discovery DiscoveryConfig `koanf:"discovery"`
	Settings  SettingsConfig  `koanf:"settings"`
}

// ServerConfig holds HTTP server settings. ShutdownTimeout bounds the drain
// of in-flight requests; HealthCheckTimeout bounds each dependency check of
// /health/ready.
type ServerConfig struct {
	Host               string        `koanf:"host"`
	Port               int           `koanf:"port"`
	ReadTimeout        time.Duration `koanf:"read_timeout"`
	WriteTimeout       time.Duration `koanf:"write_timeout"`
	IdleTimeout        time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout"`
	HealthCheckTimeout time.Duration `koanf:"health_check_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the discovery backend HTTP client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// DiscoveryConfig holds settings for discovery project aggregation and the
// baseline completion scoring policy. Stored settings override the policy
// fields per user; request parameters override both.
type DiscoveryConfig struct {
	MaxConcurrency int              `koanf:"max_concurrency"`
	Completion     CompletionConfig `koanf:"completion"`
}

// CompletionConfig holds the baseline weights and thresholds for completion
// scoring.
type CompletionConfig struct {
	AnsweredWeight      float64 `koanf:"answered_weight"`
	PartialWeight       float64 `koanf:"partial_weight"`
	CompletedThreshold  int     `koanf:"completed_threshold"`
	ActiveHighThreshold int     `koanf:"active_high_threshold"`
	ActiveLowThreshold  int     `koanf:"active_low_threshold"`
}

// SettingsConfig holds settings store options.
type SettingsConfig struct {
	Path  string `koanf:"path"`
	Watch bool   `koanf:"watch"`
}

// Policy returns the configured baseline scoring policy.
func (c CompletionConfig) Policy() completion.Policy {
	return completion.Policy{
		AnsweredWeight:      c.AnsweredWeight,
		PartialWeight:       c.PartialWeight,
		CompletedThreshold:  c.CompletedThreshold,
		ActiveHighThreshold: c.ActiveHighThreshold,
		ActiveLowThreshold:  c.ActiveLowThreshold,
	}
}
