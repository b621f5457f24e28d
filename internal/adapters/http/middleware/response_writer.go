// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The middleware chain processes requests in this order:
//
//	RequestID → CorrelationID → Logging → OpenTelemetry → Timeout → Recovery → Handler
//
// Logging installs the per-request logging.Fields and OpenTelemetry starts
// the server span, so both are visible to the error dispatcher that Timeout
// and Recovery report through. Recovery sits inside Timeout because Timeout
// runs the handler on its own goroutine.
//
// Each middleware is a func(http.Handler) http.Handler and can be composed
// using the Chain helper.
package middleware

import "net/http"

// responseWriter records the status and body size of a response. Recovery,
// OpenTelemetry and Logging each wrap the writer they receive.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader forwards only the first status code.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Flush commits the response; once flushed, a problem body can no longer
// replace it.
func (rw *responseWriter) Flush() {
	rw.headerWritten = true
	_ = http.NewResponseController(rw.ResponseWriter).Flush()
}

// committed reports whether the status line may already be on the wire.
func (rw *responseWriter) committed() bool {
	return rw.headerWritten
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
