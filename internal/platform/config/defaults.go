package config

import "github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10

	defaultDiscoveryMaxConcurrency = 8
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                 "0.0.0.0",
		"server.port":                 defaultServerPort,
		"server.read_timeout":         "5s",
		"server.write_timeout":        "10s",
		"server.idle_timeout":         "120s",
		"server.shutdown_timeout":     "15s",
		"server.health_check_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:4000",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "discovery-dashboard",

		"discovery.max_concurrency":                  defaultDiscoveryMaxConcurrency,
		"discovery.completion.answered_weight":       completion.DefaultAnsweredWeight,
		"discovery.completion.partial_weight":        completion.DefaultPartialWeight,
		"discovery.completion.completed_threshold":   completion.DefaultCompletedThreshold,
		"discovery.completion.active_high_threshold": completion.DefaultActiveHighThreshold,
		"discovery.completion.active_low_threshold":  completion.DefaultActiveLowThreshold,

		"settings.path":  "data/settings.yaml",
		"settings.watch": true,
	}
}
