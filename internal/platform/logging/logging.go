// Package logging provides structured logger construction and context propagation
// using the standard library slog package.
//
// Logger construction:
//
//	logger := logging.New("info", "json", os.Stderr,
//	    logging.WithVerbatimKeys(errhandler.LoggedMapKeys...))
//
// Context propagation (used by middleware to enrich with request metadata):
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Ambient fields (installed per request by middleware and consulted by every
// log call made with that request's context):
//
//	ctx = logging.WithFields(ctx, logging.NewFields())
//	logging.FieldsFromContext(ctx).Set("error.code", "CUSTOMER_NOT_FOUND")
//
// Application services log successful state changes only; failures are
// returned and logged once by the error dispatcher:
//
//	logger.InfoContext(ctx, "transfer posted",
//	    slog.String("operation", "Transfer"),
//	    slog.String("transfer_id", t.ID),
//	)
//
// When logging middleware is active, the context carries request_id and
// correlation_id automatically.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// Option configures New.
type Option func(*options)

type options struct {
	verbatimKeys []string
}

// WithVerbatimKeys names top-level attributes that skip masking. Use it for
// attributes whose producer applies its own redaction.
func WithVerbatimKeys(keys ...string) Option {
	return func(o *options) {
		o.verbatimKeys = append(o.verbatimKeys, keys...)
	}
}

// New builds the service logger. level accepts debug, info, warn or error in
// any case, and anything else means info. format "text" selects the text
// handler; every other value selects JSON. Debug output carries source
// locations. Records pick up the ambient [Fields] of their context, and
// credential attribute values are masked.
func New(level, format string, w io.Writer, opts ...Option) *slog.Logger {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lvl := parseLevel(level)
	hopts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(o.verbatimKeys),
	}

	var h slog.Handler = slog.NewJSONHandler(w, hopts)
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, hopts)
	}
	return slog.New(NewContextHandler(h))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
