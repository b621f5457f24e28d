package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-service-errors/internal/domain"
)

// ErrorWriter renders err as the HTTP response for r.
type ErrorWriter interface {
	WriteError(w http.ResponseWriter, r *http.Request, err error)
}

// PanicError carries a recovered panic value together with the stack of the
// goroutine that panicked.
type PanicError struct {
	Value any
	stack []string
}

// NewPanicError captures the current stack for v. It is meant to be called
// from a deferred recover.
func NewPanicError(v any) *PanicError {
	return &PanicError{Value: v, stack: domain.FormatStack(domain.CaptureStack(1))}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// StackTrace returns the frames captured at recovery.
func (e *PanicError) StackTrace() []string {
	return slices.Clone(e.stack)
}

// Recovery returns middleware that recovers from panics in downstream
// handlers and hands them to errs as a *PanicError, so a panic produces the
// same problem response and log event as any other unexpected error. When the
// response has already started only a log entry is emitted.
//
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func Recovery(errs ErrorWriter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				perr := NewPanicError(v)
				if rw.committed() {
					logger.ErrorContext(r.Context(), "panic recovered after response started",
						slog.String("panic", fmt.Sprint(v)),
						slog.Any("stack", perr.StackTrace()),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					return
				}
				errs.WriteError(rw, r, perr)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
