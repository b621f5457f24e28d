// Package health tracks downstream dependency health for the readiness probe.
package health

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds one checker per dependency name. It is safe for concurrent
// use; CheckAll probes every dependency in parallel.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker, replacing any checker already registered under the
// same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.checkers = slices.DeleteFunc(r.checkers, func(c ports.HealthChecker) bool {
		return c.Name() == name
	})
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check concurrently and returns the outcome keyed by
// dependency name. A nil value means healthy. The call returns once the
// slowest check finishes, so callers bound it through ctx.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
		g       errgroup.Group
	)
	for _, c := range checkers {
		g.Go(func() error {
			err := c.HealthCheck(ctx)
			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}
