package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	logLevels        = []string{"debug", "info", "warn", "error"}
	logFormats       = []string{"json", "text"}
	exporters        = []string{"stdout", "otlp"}
	problemLogLevels = []string{LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelOff}
)

// violations accumulates one error per failed rule, prefixed with the key.
type violations []error

func (v *violations) check(ok bool, key, format string, args ...any) {
	if !ok {
		*v = append(*v, fmt.Errorf("%s "+format, append([]any{key}, args...)...))
	}
}

func (v *violations) oneOf(key, got string, allowed []string) {
	v.check(slices.Contains(allowed, got), key, "must be one of %s; got %q", strings.Join(allowed, ", "), got)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var v violations

	v.check(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", c.Server.Port)
	v.check(c.Server.ReadTimeout > 0, "server.read_timeout", "must be positive")
	v.check(c.Server.WriteTimeout > 0, "server.write_timeout", "must be positive")

	v.oneOf("log.level", c.Log.Level, logLevels)
	v.oneOf("log.format", c.Log.Format, logFormats)

	c.Client.validate(&v)
	c.Telemetry.validate(&v)
	c.Problem.validate(&v)

	return errors.Join(v...)
}

func (cl *ClientConfig) validate(v *violations) {
	v.check(cl.BaseURL != "", "client.base_url", "must not be empty")
	v.check(cl.Timeout > 0, "client.timeout", "must be positive")
	v.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts", "must be >= 1, got %d", cl.Retry.MaxAttempts)
	v.check(cl.Retry.Multiplier > 0, "client.retry.multiplier", "must be positive, got %g", cl.Retry.Multiplier)
	v.check(cl.RateLimit.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second",
		"must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	if cl.RateLimit.RequestsPerSecond > 0 {
		v.check(cl.RateLimit.BurstSize >= 1, "client.rate_limit.burst_size", "must be >= 1, got %d", cl.RateLimit.BurstSize)
	}
	v.check(cl.CircuitBreaker.MaxFailures >= 1, "client.circuit_breaker.max_failures",
		"must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
}

// Telemetry settings are only checked when telemetry is enabled.
func (t *TelemetryConfig) validate(v *violations) {
	if !t.Enabled {
		return
	}
	v.oneOf("telemetry.exporter", t.Exporter, exporters)
	if t.Exporter == "otlp" {
		v.check(t.Endpoint != "", "telemetry.endpoint", "must not be empty when exporter is otlp")
	}
	v.check(t.SampleRatio >= 0 && t.SampleRatio <= 1, "telemetry.sample_ratio", "must be between 0 and 1, got %g", t.SampleRatio)
}

func (p *ProblemConfig) validate(v *violations) {
	v.oneOf("problem.log_level", p.LogLevel, problemLogLevels)

	u, err := url.Parse(p.BaseErrorURI)
	v.check(err == nil && u.Scheme != "" && u.Host != "", "problem.base_error_uri",
		"must be an absolute URI, got %q", p.BaseErrorURI)
}
