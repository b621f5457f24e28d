package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultProblemLogLevel = "ERROR"
	defaultBaseErrorURI    = "https://api.company.com/errors"
)

// defaultSensitiveFields lists the request fields whose validation messages
// are redacted in logs unless configuration says otherwise.
var defaultSensitiveFields = []string{"password", "email", "ssn", "creditCard", "phoneNumber"}

// defaults returns the default configuration values. They form the lowest
// layer of Load and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "go-service-errors",
		"telemetry.sample_ratio": 1.0,

		"problem.include_stack_trace": false,
		"problem.include_cause":       false,
		"problem.log_level":           defaultProblemLogLevel,
		"problem.sensitive_fields":    append([]string(nil), defaultSensitiveFields...),
		"problem.expose_error_codes":  true,
		"problem.base_error_uri":      defaultBaseErrorURI,
	}
}

// DefaultProblemConfig returns the problem settings used when nothing is
// configured.
func DefaultProblemConfig() ProblemConfig {
	return ProblemConfig{
		LogLevel:         defaultProblemLogLevel,
		SensitiveFields:  append([]string(nil), defaultSensitiveFields...),
		ExposeErrorCodes: true,
		BaseErrorURI:     defaultBaseErrorURI,
	}
}
