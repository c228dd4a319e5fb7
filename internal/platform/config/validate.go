package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects the violations of one config section.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p problems) err() error { return errors.Join(p...) }

// Validate reports every invalid setting, not just the first.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Discovery.validate(),
		c.Settings.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var p problems
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.HealthCheckTimeout > 0, "server.health_check_timeout must be positive")
	return p.err()
}

func (l *LogConfig) validate() error {
	var p problems
	p.check(slices.Contains(logLevels, l.Level),
		"log.level must be one of %s, got %q", strings.Join(logLevels, ", "), l.Level)
	p.check(slices.Contains(logFormats, l.Format),
		"log.format must be one of %s, got %q", strings.Join(logFormats, ", "), l.Format)
	return p.err()
}

func (cl *ClientConfig) validate() error {
	var p problems
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier >= 1, "client.retry.multiplier must be >= 1, got %g", cl.Retry.Multiplier)
	p.check(cl.Retry.InitialInterval <= cl.Retry.MaxInterval,
		"client.retry.initial_interval %s exceeds max_interval %s", cl.Retry.InitialInterval, cl.Retry.MaxInterval)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d", cl.RateLimit.BurstSize)
	return p.err()
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var p problems
	p.check(slices.Contains(exporters, t.Exporter),
		"telemetry.exporter must be one of %s, got %q", strings.Join(exporters, ", "), t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
	return p.err()
}

func (d *DiscoveryConfig) validate() error {
	var p problems
	p.check(d.MaxConcurrency >= 1, "discovery.max_concurrency must be >= 1, got %d", d.MaxConcurrency)
	if err := d.Completion.Policy().Validate(); err != nil {
		p = append(p, fmt.Errorf("discovery.completion: %w", err))
	}
	return p.err()
}

func (s *SettingsConfig) validate() error {
	var p problems
	p.check(strings.TrimSpace(s.Path) != "", "settings.path must not be empty")
	return p.err()
}
