package config

import (
	"strings"
)

// Problem log levels. LogLevelOff disables dispatcher logging entirely.
const (
	LogLevelError = "ERROR"
	LogLevelWarn  = "WARN"
	LogLevelInfo  = "INFO"
	LogLevelOff   = "OFF"
)

// ProblemConfig controls how failures are translated into RFC 9457 problem
// responses and logged. It is read-only after Load.
type ProblemConfig struct {
	// IncludeStackTrace adds a stackTrace extension to business and
	// unexpected-error responses. Not for production use.
	IncludeStackTrace bool `koanf:"include_stack_trace"`
	// IncludeCause adds a cause extension carrying the wrapped error's message.
	IncludeCause bool `koanf:"include_cause"`
	// LogLevel is one of ERROR, WARN, INFO or OFF.
	LogLevel string `koanf:"log_level"`
	// SensitiveFields names request fields whose validation messages are
	// redacted in logs. Matching also covers nested paths; see IsSensitiveField.
	SensitiveFields []string `koanf:"sensitive_fields"`
	// ExposeErrorCodes controls the errorCode extension.
	ExposeErrorCodes bool `koanf:"expose_error_codes"`
	// BaseErrorURI prefixes every problem type URI.
	BaseErrorURI string `koanf:"base_error_uri"`
}

// ShouldLogErrors reports whether the dispatcher emits log events.
func (p *ProblemConfig) ShouldLogErrors() bool {
	return !strings.EqualFold(p.LogLevel, LogLevelOff)
}

// IsSensitiveField reports whether name refers to a sensitive field. A field
// matches when it equals an entry, ends with "."+entry, or contains
// "."+entry+"." anywhere in its path. Blank names never match.
//
//	"password"               matches "password"
//	"user.email"             matches "email"
//	"data.user.email.domain" matches "email"
func (p *ProblemConfig) IsSensitiveField(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, f := range p.SensitiveFields {
		if name == f ||
			strings.HasSuffix(name, "."+f) ||
			strings.Contains(name, "."+f+".") {
			return true
		}
	}
	return false
}

// BuildErrorTypeURI returns the problem type URI for code: the base URI,
// a slash, and the code lowercased with underscores turned into hyphens.
// A blank code yields the "unknown" type.
func (p *ProblemConfig) BuildErrorTypeURI(code string) string {
	if strings.TrimSpace(code) == "" {
		return p.BaseErrorURI + "/unknown"
	}
	return p.BaseErrorURI + "/" + strings.ReplaceAll(strings.ToLower(code), "_", "-")
}

// normalize upper-cases the log level and drops duplicate or blank
// sensitive fields, keeping first occurrences in order.
func (p *ProblemConfig) normalize() {
	p.LogLevel = strings.ToUpper(strings.TrimSpace(p.LogLevel))

	seen := make(map[string]struct{}, len(p.SensitiveFields))
	fields := make([]string, 0, len(p.SensitiveFields))
	for _, f := range p.SensitiveFields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	p.SensitiveFields = fields
}
