package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// credentialHeaders are lowercase header names that always carry secrets.
var credentialHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// credentialFragments mark any header whose lowercase name contains them as
// sensitive, e.g. X-Auth-Token or X-Client-Secret.
var credentialFragments = []string{"token", "secret", "password"}

// RedactHeaders renders headers as log attributes sorted by name. Credential
// headers are replaced with "[REDACTED]" and multi-value headers are joined
// with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		if isCredentialHeader(key) {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
	}
	return attrs
}

func isCredentialHeader(name string) bool {
	lower := strings.ToLower(name)
	if credentialHeaders[lower] {
		return true
	}
	for _, frag := range credentialFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}
