package ledger

import "context"

// Name returns the identifier used when this client is registered with a
// [ports.HealthRegistry].
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck reports the ledger's availability from the circuit breaker
// state without a network call. A half-open breaker wraps ports.ErrDegraded.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
