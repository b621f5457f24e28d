package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// SpanContextIDs reads trace and span identifiers from the OpenTelemetry
// span stored in a context.
type SpanContextIDs struct{}

// CurrentIDs returns the hex trace and span IDs of the span in ctx. ok is
// false when ctx carries no valid span context.
func (SpanContextIDs) CurrentIDs(ctx context.Context) (traceID, spanID string, ok bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", "", false
	}
	return sc.TraceID().String(), sc.SpanID().String(), true
}
