package logging

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// fieldsKey is the context key for the ambient field store.
type fieldsKey struct{}

// Fields is a mutable key/value store shared by everything that logs on
// behalf of one request. Middleware installs an empty store per request;
// code that needs temporary keys saves a Snapshot, sets its keys, and
// restores on the way out. All methods are safe for concurrent use and
// tolerate a nil receiver.
type Fields struct {
	mu sync.Mutex
	m  map[string]string
}

// NewFields returns an empty store.
func NewFields() *Fields {
	return &Fields{}
}

// WithFields returns a context carrying f.
func WithFields(ctx context.Context, f *Fields) context.Context {
	return context.WithValue(ctx, fieldsKey{}, f)
}

// FieldsFromContext returns the store in ctx, or nil.
func FieldsFromContext(ctx context.Context) *Fields {
	f, _ := ctx.Value(fieldsKey{}).(*Fields)
	return f
}

// Snapshot returns a copy of the current entries, or nil when the store
// holds nothing.
func (f *Fields) Snapshot() map[string]string {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.m) == 0 {
		return nil
	}
	return maps.Clone(f.m)
}

// Replace discards every entry and installs a copy of m.
func (f *Fields) Replace(m map[string]string) {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.m = maps.Clone(m)
}

// Set stores value under key.
func (f *Fields) Set(key, value string) {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.m == nil {
		f.m = make(map[string]string)
	}
	f.m[key] = value
}

// Remove deletes keys. Other entries are left untouched.
func (f *Fields) Remove(keys ...string) {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, k := range keys {
		delete(f.m, k)
	}
}

// attrs renders the entries as string attributes in key order.
func (f *Fields) attrs() []slog.Attr {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.m) == 0 {
		return nil
	}
	out := make([]slog.Attr, 0, len(f.m))
	for _, k := range slices.Sorted(maps.Keys(f.m)) {
		out = append(out, slog.String(k, f.m[k]))
	}
	return out
}

// ContextHandler decorates a slog.Handler so that every record carries the
// ambient Fields of the context it was logged with.
type ContextHandler struct {
	next slog.Handler
}

// NewContextHandler wraps next.
func NewContextHandler(next slog.Handler) *ContextHandler {
	return &ContextHandler{next: next}
}

// Enabled delegates to the wrapped handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle adds the context's fields to r and delegates.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if f := FieldsFromContext(ctx); f != nil {
		if attrs := f.attrs(); len(attrs) > 0 {
			r = r.Clone()
			r.AddAttrs(attrs...)
		}
	}
	return h.next.Handle(ctx, r)
}

// WithAttrs returns a ContextHandler wrapping next.WithAttrs(attrs).
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs)}
}

// WithGroup returns a ContextHandler wrapping next.WithGroup(name).
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name)}
}
