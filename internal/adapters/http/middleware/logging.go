package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-service-errors/internal/platform/logging"
)

// Ambient field keys installed for every request.
const (
	FieldRequestID     = "request_id"
	FieldCorrelationID = "correlation_id"
)

// Logging gives each request its own logging.Fields store seeded with the
// request and correlation IDs, puts logger in the context and logs the
// request's start and completion. Fields reach records only through a
// logging.ContextHandler.
//
// Place it after RequestID and CorrelationID and ahead of anything that
// dispatches errors.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := logging.WithLogger(logging.WithFields(r.Context(), requestFields(r.Context())), logger)

			logger.LogAttrs(ctx, slog.LevelInfo, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			logger.LogAttrs(ctx, slog.LevelInfo, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func requestFields(ctx context.Context) *logging.Fields {
	fields := logging.NewFields()
	for key, id := range map[string]string{
		FieldRequestID:     RequestIDFromContext(ctx),
		FieldCorrelationID: CorrelationIDFromContext(ctx),
	} {
		if id != "" {
			fields.Set(key, id)
		}
	}
	return fields
}
