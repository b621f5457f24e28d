package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-service-errors/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if !cfg.Problem.IncludeStackTrace {
		t.Error("Problem.IncludeStackTrace = false, want true for local")
	}
	if cfg.Problem.BaseErrorURI != "http://localhost:8080/errors" {
		t.Errorf("Problem.BaseErrorURI = %q, want local override", cfg.Problem.BaseErrorURI)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.SampleRatio != 0.25 {
		t.Errorf("Telemetry.SampleRatio = %v, want 0.25", cfg.Telemetry.SampleRatio)
	}
	if cfg.Problem.ExposeErrorCodes {
		t.Error("Problem.ExposeErrorCodes = true, want false for prod")
	}
	if cfg.Problem.LogLevel != config.LogLevelWarn {
		t.Errorf("Problem.LogLevel = %q, want WARN", cfg.Problem.LogLevel)
	}
}

func TestLoad_SensitiveFieldsAreDeduplicated(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	want := []string{"password", "email", "ssn", "creditCard", "phoneNumber", "iban"}
	got := cfg.Problem.SensitiveFields
	if len(got) != len(want) {
		t.Fatalf("SensitiveFields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SensitiveFields[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
	if len(cfg.Problem.SensitiveFields) != 5 {
		t.Errorf("Problem.SensitiveFields = %v, want the 5 base entries", cfg.Problem.SensitiveFields)
	}
	if cfg.Problem.LogLevel != config.LogLevelError {
		t.Errorf("Problem.LogLevel = %q, want ERROR (from base)", cfg.Problem.LogLevel)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "log:\n  level: warn\n")
	writeFile(t, dir, "test.yaml", "{}\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Problem.BaseErrorURI != "https://api.company.com/errors" {
		t.Errorf("Problem.BaseErrorURI = %q, want default", cfg.Problem.BaseErrorURI)
	}
	if !cfg.Problem.ExposeErrorCodes {
		t.Error("Problem.ExposeErrorCodes = false, want default true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "top level key",
			env:  map[string]string{"APP_SERVER_PORT": "9090"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.Port != 9090 {
					t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
				}
			},
		},
		{
			name: "underscore inside key",
			env:  map[string]string{"APP_SERVER_READ_TIMEOUT": "15s"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.ReadTimeout != 15*time.Second {
					t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
				}
			},
		},
		{
			name: "nested client keys",
			env: map[string]string{
				"APP_CLIENT_CIRCUIT_BREAKER_MAX_FAILURES":   "7",
				"APP_CLIENT_RETRY_MAX_ATTEMPTS":             "5",
				"APP_CLIENT_RATE_LIMIT_REQUESTS_PER_SECOND": "20",
				"APP_CLIENT_RATE_LIMIT_BURST_SIZE":          "4",
			},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Client.CircuitBreaker.MaxFailures != 7 {
					t.Errorf("CircuitBreaker.MaxFailures = %d, want 7", cfg.Client.CircuitBreaker.MaxFailures)
				}
				if cfg.Client.Retry.MaxAttempts != 5 {
					t.Errorf("Retry.MaxAttempts = %d, want 5", cfg.Client.Retry.MaxAttempts)
				}
				if cfg.Client.RateLimit.RequestsPerSecond != 20 || cfg.Client.RateLimit.BurstSize != 4 {
					t.Errorf("RateLimit = %+v, want 20 rps burst 4", cfg.Client.RateLimit)
				}
			},
		},
		{
			name: "comma separated list is deduplicated",
			env:  map[string]string{"APP_PROBLEM_SENSITIVE_FIELDS": "iban,password,iban"},
			check: func(t *testing.T, cfg *config.Config) {
				got := cfg.Problem.SensitiveFields
				if len(got) != 2 || got[0] != "iban" || got[1] != "password" {
					t.Errorf("SensitiveFields = %v, want [iban password]", got)
				}
			},
		},
		{
			name: "problem log level is normalized",
			env:  map[string]string{"APP_PROBLEM_LOG_LEVEL": "off"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Problem.LogLevel != config.LogLevelOff {
					t.Errorf("Problem.LogLevel = %q, want OFF", cfg.Problem.LogLevel)
				}
				if cfg.Problem.ShouldLogErrors() {
					t.Error("ShouldLogErrors() = true, want false")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir("../../..")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load("local")
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b", `a\b`, "-dev", "prod.eu", "local "} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantKey string
		mutate  func(*config.Config)
	}{
		{"server.port", func(c *config.Config) { c.Server.Port = 0 }},
		{"server.port", func(c *config.Config) { c.Server.Port = 70000 }},
		{"log.level", func(c *config.Config) { c.Log.Level = "verbose" }},
		{"log.format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"client.retry.max_attempts", func(c *config.Config) { c.Client.Retry.MaxAttempts = 0 }},
		{"client.retry.multiplier", func(c *config.Config) { c.Client.Retry.Multiplier = 0 }},
		{"client.rate_limit.requests_per_second", func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 }},
		{"client.rate_limit.burst_size", func(c *config.Config) {
			c.Client.RateLimit.RequestsPerSecond = 5
			c.Client.RateLimit.BurstSize = 0
		}},
		{"telemetry.sample_ratio", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.SampleRatio = 1.5
		}},
		{"telemetry.endpoint", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
			c.Telemetry.Endpoint = ""
		}},
		{"problem.log_level", func(c *config.Config) { c.Problem.LogLevel = "TRACE" }},
		{"problem.base_error_uri", func(c *config.Config) { c.Problem.BaseErrorURI = "" }},
		{"problem.base_error_uri", func(c *config.Config) { c.Problem.BaseErrorURI = "/errors" }},
	}

	for _, tt := range tests {
		t.Run(tt.wantKey, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("Validate() error = %q, want it to name %s", err, tt.wantKey)
			}
		})
	}
}

func TestValidate_IgnoresDisabledTelemetry(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = false
	cfg.Telemetry.Exporter = "zipkin"
	cfg.Telemetry.SampleRatio = 7
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil while telemetry is disabled", err)
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0
	cfg.Log.Level = "loud"
	cfg.Problem.LogLevel = "TRACE"

	err := cfg.Validate()
	for _, key := range []string{"server.port", "log.level", "problem.log_level"} {
		if err == nil || !strings.Contains(err.Error(), key) {
			t.Errorf("Validate() error = %v, want it to name %s", err, key)
		}
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     2 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			SampleRatio: 1,
		},
		Problem: config.DefaultProblemConfig(),
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}
