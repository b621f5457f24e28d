package middleware

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-service-errors/internal/domain"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/logging"
)

// Timeout bounds each request by d. The handler writes into a buffer from
// its own goroutine; if d elapses first the buffer is dropped and errs
// renders GATEWAY_TIMEOUT with a "timeout" detail. Later handler writes fail
// with http.ErrHandlerTimeout. A request canceled by the client is abandoned
// without a response.
//
// Panics in the handler goroutine escape this middleware, so Recovery has to
// sit inside it.
func Timeout(d time.Duration, errs ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case <-done:
				buf.copyTo(w)
			case <-ctx.Done():
				buf.abandon()
				if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return
				}
				errs.WriteError(w, detachFields(r), domain.BusinessBuilderFor(domain.CodeGatewayTimeout).
					Detail("timeout", d.String()).
					Build())
			}
		})
	}
}

// detachFields gives r a private copy of its ambient log fields. The
// abandoned handler goroutine may still be logging through the original
// store while the timeout is dispatched.
func detachFields(r *http.Request) *http.Request {
	shared := logging.FieldsFromContext(r.Context())
	if shared == nil {
		return r
	}
	own := logging.NewFields()
	own.Replace(shared.Snapshot())
	return r.WithContext(logging.WithFields(r.Context(), own))
}

// bufferedWriter holds a response until Timeout decides its fate. It is
// shared by the handler goroutine and the waiting middleware.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (b *bufferedWriter) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 && !b.abandoned {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedWriter) abandon() {
	b.mu.Lock()
	b.abandoned = true
	b.mu.Unlock()
}

// copyTo replays the buffered response onto w. A handler that wrote
// nothing leaves w untouched.
func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
