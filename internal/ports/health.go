package ports

import "context"

// HealthChecker is a dependency the readiness probe reports on, such as the
// discovery backend client or the settings store.
type HealthChecker interface {
	// Name identifies the dependency in readiness output.
	Name() string
	// HealthCheck returns nil when the dependency is usable.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns one entry per registered name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
