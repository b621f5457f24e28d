package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
)

// ProblemContentType is the media type of RFC 9457 problem responses.
const ProblemContentType = "application/problem+json"

// Members defined by RFC 9457. Extensions never override them.
var standardMembers = map[string]bool{
	"type":     true,
	"title":    true,
	"status":   true,
	"detail":   true,
	"instance": true,
}

// ProblemDetail is an RFC 9457 problem details object. Extensions are
// serialized as top-level members after the standard ones, in key order.
type ProblemDetail struct {
	Type       string
	Title      string
	Status     int
	Detail     string
	Instance   string
	Extensions map[string]any
}

// NewProblemDetail returns a problem of type "about:blank" titled with the
// standard reason phrase for status.
func NewProblemDetail(status int, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

// Set stores an extension member, replacing any previous value.
func (p *ProblemDetail) Set(key string, value any) {
	if p.Extensions == nil {
		p.Extensions = make(map[string]any)
	}
	p.Extensions[key] = value
}

// Get returns the extension member stored under key.
func (p *ProblemDetail) Get(key string) (any, bool) {
	v, ok := p.Extensions[key]
	return v, ok
}

// MarshalJSON flattens the extensions into the problem object.
func (p *ProblemDetail) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	write := func(key string, value any) error {
		v, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshaling problem member %q: %w", key, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	type member struct {
		key   string
		value any
		keep  bool
	}
	std := []member{
		{"type", p.Type, p.Type != ""},
		{"title", p.Title, p.Title != ""},
		{"status", p.Status, p.Status != 0},
		{"detail", p.Detail, p.Detail != ""},
		{"instance", p.Instance, p.Instance != ""},
	}
	for _, m := range std {
		if !m.keep {
			continue
		}
		if err := write(m.key, m.value); err != nil {
			return nil, err
		}
	}

	for _, k := range slices.Sorted(maps.Keys(p.Extensions)) {
		if standardMembers[k] {
			continue
		}
		if err := write(k, p.Extensions[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the standard members and collects every other member
// into Extensions.
func (p *ProblemDetail) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = ProblemDetail{}
	targets := map[string]any{
		"type":     &p.Type,
		"title":    &p.Title,
		"status":   &p.Status,
		"detail":   &p.Detail,
		"instance": &p.Instance,
	}
	for k, v := range raw {
		if dst, ok := targets[k]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				return fmt.Errorf("decoding problem member %q: %w", k, err)
			}
			continue
		}
		var ext any
		if err := json.Unmarshal(v, &ext); err != nil {
			return fmt.Errorf("decoding problem member %q: %w", k, err)
		}
		p.Set(k, ext)
	}
	return nil
}

// WriteProblem writes p as an application/problem+json response with p's
// status. A status outside the valid range is written as 500.
func WriteProblem(w http.ResponseWriter, r *http.Request, p *ProblemDetail) {
	status := p.Status
	if status < 100 || status > 999 {
		status = http.StatusInternalServerError
	}

	body, err := json.Marshal(p)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to encode problem response",
			slog.Any("error", err),
		)
		fallback := NewProblemDetail(http.StatusInternalServerError, "An unexpected error occurred")
		fallback.Instance = p.Instance
		body, _ = json.Marshal(fallback)
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
