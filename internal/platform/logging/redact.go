package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Attribute keys whose values are always masked.
var maskedKeys = []string{
	"authorization",
	"proxy-authorization",
	"x-api-key",
	"cookie",
	"set-cookie",
	"password",
	"secret",
	"token",
}

var maskedKeyPrefixes = []string{"secret_", "api_key", "access_token"}

// Raw values masked regardless of the key they are logged under. JWT
// segments need at least ten characters so version strings survive.
var maskedValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// newRedactAttr builds the ReplaceAttr hook that masks credentials before a
// record is encoded. Top-level attributes named in verbatim are passed
// through untouched: their producer already decided what may be logged, and
// masq would otherwise match the keys inside their maps.
func newRedactAttr(verbatim []string) func([]string, slog.Attr) slog.Attr {
	n := len(maskedKeys) + len(maskedKeyPrefixes) + len(maskedValuePatterns)
	opts := make([]masq.Option, 0, n)

	for _, key := range maskedKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	for _, prefix := range maskedKeyPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range maskedValuePatterns {
		opts = append(opts, masq.WithRegex(re))
	}

	mask := masq.New(opts...)
	if len(verbatim) == 0 {
		return mask
	}

	skip := make(map[string]struct{}, len(verbatim))
	for _, key := range verbatim {
		skip[key] = struct{}{}
	}
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 {
			if _, ok := skip[a.Key]; ok {
				return a
			}
		}
		return mask(groups, a)
	}
}
