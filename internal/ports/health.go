package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a health failure the service can still serve through,
// such as a downstream whose circuit breaker is probing for recovery.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports the health of one dependency.
type HealthChecker interface {
	// Name identifies the dependency in readiness reports.
	Name() string

	// HealthCheck returns nil when the dependency is usable. Errors that
	// wrap ErrDegraded do not fail readiness.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds checker, replacing any checker with the same name.
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns its outcome by name.
	CheckAll(ctx context.Context) map[string]error
}
