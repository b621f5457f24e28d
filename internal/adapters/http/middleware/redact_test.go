package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders_CredentialHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		value  string
	}{
		{name: "authorization", header: "Authorization", value: "Bearer abc"},
		{name: "proxy authorization", header: "Proxy-Authorization", value: "Basic Zm9v"},
		{name: "api key", header: "X-Api-Key", value: "k-123"},
		{name: "cookie", header: "Cookie", value: "session=abc123"},
		{name: "set cookie", header: "Set-Cookie", value: "session=abc123; HttpOnly"},
		{name: "token fragment", header: "X-Auth-Token", value: "tok"},
		{name: "secret fragment", header: "X-Client-Secret", value: "shh"},
		{name: "password fragment", header: "X-Ledger-Password", value: "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(http.Header{tt.header: {tt.value}})

			if len(attrs) != 1 {
				t.Fatalf("len(attrs) = %d, want 1", len(attrs))
			}
			if attrs[0].Key != tt.header {
				t.Errorf("key = %q, want %q", attrs[0].Key, tt.header)
			}
			if got := attrs[0].Value.String(); got != redactedValue {
				t.Errorf("%s = %q, want %q", tt.header, got, redactedValue)
			}
		})
	}
}

func TestRedactHeaders_SortedAndJoined(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"X-Request-Id":  {"req-1"},
		"Accept":        {"application/json", "application/problem+json"},
		"Authorization": {"Bearer abc"},
		"Content-Type":  {"application/json"},
	}

	attrs := middleware.RedactHeaders(headers)

	want := []struct{ key, value string }{
		{"Accept", "application/json,application/problem+json"},
		{"Authorization", redactedValue},
		{"Content-Type", "application/json"},
		{"X-Request-Id", "req-1"},
	}
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, w := range want {
		if attrs[i].Key != w.key || attrs[i].Value.String() != w.value {
			t.Errorf("attrs[%d] = %s=%q, want %s=%q",
				i, attrs[i].Key, attrs[i].Value.String(), w.key, w.value)
		}
	}
}

func TestRedactHeaders_EmptyHeaders(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}
