package ports

import "context"

// TraceProvider exposes the identifiers of the trace active in a context.
type TraceProvider interface {
	// CurrentIDs returns the trace and span IDs active in ctx. ok is false
	// when no trace is active.
	CurrentIDs(ctx context.Context) (traceID, spanID string, ok bool)
}
