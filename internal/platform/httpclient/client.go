// Package httpclient is the outbound HTTP client shared by downstream
// adapters. Each call runs through
//
//	circuit breaker → rate limiter → header propagation → client span → retry
//
// Reads (GET, HEAD, OPTIONS, PUT, DELETE) are retried with exponential
// backoff. A POST gets exactly one attempt so a lost response never turns into
// a second transfer.
//
//	client := httpclient.New(&cfg.Client, "ledger-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores request and correlation IDs with WithRequestID
// and WithCorrelationID; Do copies them onto the outbound request.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-service-errors/internal/platform/config"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/go-service-errors/internal/platform/httpclient"

// Health states reported by HealthCheck, wrapped with the service name.
var (
	ErrDegraded    = fmt.Errorf("circuit breaker half-open: %w", ports.ErrDegraded)
	ErrUnavailable = errors.New("circuit breaker open")
)

type metadataKey int

const (
	requestIDKey metadataKey = iota
	correlationIDKey
)

// propagated maps context metadata onto outbound headers.
var propagated = []struct {
	key    metadataKey
	header string
}{
	{requestIDKey, "X-Request-ID"},
	{correlationIDKey, "X-Correlation-ID"},
}

// WithRequestID stores the inbound request ID for outbound propagation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID stores the correlation ID for outbound propagation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client sends requests to a single downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a client for serviceName, which labels breaker logs, spans and
// metrics. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	c.breaker = newBreaker(serviceName, cfg.CircuitBreaker, logger)

	// Zero requests per second leaves the limiter off.
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req. The response body, when resp is non-nil, belongs to the
// caller. After the last retry on a 5xx or 429 both resp and err are set so
// the caller can still read the downstream problem body. Breaker rejections
// and transport failures return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for %s rate limit: %w", c.serviceName, err)
			}
		}

		for _, p := range propagated {
			if id, ok := ctx.Value(p.key).(string); ok && id != "" {
				req.Header.Set(p.header, id)
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		var r *http.Response
		err := c.doWithRetry(spanCtx, req.WithContext(spanCtx), &r)
		endSpan(span, r, err)
		return r, err
	})

	c.recordMetrics(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the configured downstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service name.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck derives downstream health from the breaker alone. Half-open
// wraps ErrDegraded and open wraps ErrUnavailable.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w", c.serviceName, ErrDegraded)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: %w", c.serviceName, ErrUnavailable)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx,
		req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// outcome labels a call for the client metrics.
func outcome(resp *http.Response, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case resp != nil && resp.StatusCode < http.StatusBadRequest:
		return "success"
	default:
		return "error"
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(outcome(resp, err)),
	)

	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
