package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/go-service-errors/internal/platform/logging"
)

// jitterFraction spreads each backoff delay by ±25%.
const jitterFraction = 0.25

// StatusError reports that the downstream answered with a retryable status
// on the final attempt.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Service)
}

// newBackOff returns the delay schedule for one call.
func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryCfg.initialInterval
	b.MaxInterval = c.retryCfg.maxInterval
	b.Multiplier = c.retryCfg.multiplier
	b.RandomizationFactor = jitterFraction
	return b
}

// doWithRetry sends req until it gets a non-retryable outcome or runs out of
// attempts. The body is buffered once and replayed on every attempt. The
// response is written through resp so its body stays visibly owned by Do's
// caller.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	attempts := c.retryCfg.maxAttempts
	if !isIdempotent(req.Method) {
		attempts = 1
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	var (
		tries   int
		discard *http.Response
	)
	attempt := func() (*http.Response, error) {
		if discard != nil {
			drainResponseBody(discard)
			discard = nil
		}
		tries++
		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if isRetryableStatus(r.StatusCode) {
			discard = r
			return r, &StatusError{Service: c.serviceName, StatusCode: r.StatusCode}
		}
		return r, nil
	}

	r, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logRetry(ctx, req, tries+1, attempts, next, err)
		}),
	)

	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Unwrap()
	}

	// Only a retryable status on the final attempt hands its body to the
	// caller; any other failure releases it here.
	var statusErr *StatusError
	if err != nil && r != nil && !errors.As(err, &statusErr) {
		drainResponseBody(r)
		r = nil
	}

	*resp = r
	return err
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody lets the transport reuse the connection.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *Client) logRetry(ctx context.Context, req *http.Request, attempt, attempts int, delay time.Duration, cause error) {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", cause),
	)
}

// isRetryable reports whether a transport error is worth another attempt.
// Only caller cancellation and deadlines are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isIdempotent reports whether a request with method may be replayed.
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// isRetryableStatus covers 5xx and 429 Too Many Requests.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
