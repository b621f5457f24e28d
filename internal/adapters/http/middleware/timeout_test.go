package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/errhandler"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/logging"
)

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name: "explicit status and header",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Location", "/api/v1/customers/c-1")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"c-1"}`))
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"c-1"}`,
			wantHeader: "/api/v1/customers/c-1",
		},
		{
			name: "implicit 200 on first write",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("listed"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "listed",
		},
		{
			name: "second WriteHeader ignored",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Timeout(time.Second, newDispatcher(nil))(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if got := rec.Header().Get("Location"); got != tt.wantHeader {
				t.Errorf("Location = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestTimeout_HandlerSeesDeadline(t *testing.T) {
	t.Parallel()

	var remaining time.Duration
	handler := middleware.Timeout(time.Second, newDispatcher(nil))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if deadline, ok := r.Context().Deadline(); ok {
			remaining = time.Until(deadline)
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/accounts/acc-1", http.NoBody))

	if remaining <= 0 || remaining > time.Second {
		t.Errorf("time to deadline = %v, want within (0, 1s]", remaining)
	}
}

func TestTimeout_RendersGatewayTimeout(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	lateWrite := make(chan error, 1)

	handler := middleware.Timeout(25*time.Millisecond, newDispatcher(testLogger(&logs)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("half a transfer"))
		<-r.Context().Done()
		time.Sleep(5 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateWrite <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/transfers", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	if strings.Contains(rec.Body.String(), "half a transfer") {
		t.Error("partial handler output leaked into the problem response")
	}

	body := decodeProblem(t, rec)
	if body["errorCode"] != "GATEWAY_TIMEOUT" {
		t.Errorf("errorCode = %v, want GATEWAY_TIMEOUT", body["errorCode"])
	}
	if body["timeout"] != "25ms" {
		t.Errorf("timeout = %v, want 25ms", body["timeout"])
	}
	if !strings.Contains(logs.String(), "Domain exception occurred") {
		t.Errorf("dispatcher did not log the timeout: %s", logs.String())
	}

	select {
	case err := <-lateWrite:
		if !errors.Is(err, http.ErrHandlerTimeout) {
			t.Errorf("late write error = %v, want http.ErrHandlerTimeout", err)
		}
	case <-time.After(time.Second):
		t.Fatal("handler goroutine never finished")
	}
}

func TestTimeout_ClientCancelWritesNothing(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	handler := middleware.Timeout(time.Second, newDispatcher(testLogger(&logs)))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers", http.NoBody).WithContext(ctx))

	if rec.Code == http.StatusGatewayTimeout {
		t.Errorf("status = %d, want no gateway timeout for a canceled request", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
	if logs.Len() != 0 {
		t.Errorf("dispatcher logged a canceled request: %s", logs.String())
	}
}

// gateHandler pauses the first record it handles until release is closed.
type gateHandler struct {
	slog.Handler
	reached chan<- struct{}
	release <-chan struct{}
}

func (h gateHandler) Handle(ctx context.Context, r slog.Record) error {
	select {
	case h.reached <- struct{}{}:
	default:
	}
	select {
	case <-h.release:
	case <-time.After(time.Second):
	}
	return h.Handler.Handle(ctx, r)
}

func TestTimeout_DispatchUsesPrivateFields(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	reached := make(chan struct{}, 1)
	release := make(chan struct{})
	seen := make(chan map[string]string, 1)

	logger := slog.New(logging.NewContextHandler(gateHandler{
		Handler: slog.NewJSONHandler(&logs, nil),
		reached: reached,
		release: release,
	}))

	handler := middleware.Timeout(25*time.Millisecond, newDispatcher(logger))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		select {
		case <-reached:
		case <-time.After(time.Second):
		}
		seen <- logging.FieldsFromContext(r.Context()).Snapshot()
		close(release)
	}))

	fields := logging.NewFields()
	fields.Set("request_id", "r-1")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers", http.NoBody)
	req = req.WithContext(logging.WithFields(req.Context(), fields))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}

	var during map[string]string
	select {
	case during = <-seen:
	case <-time.After(time.Second):
		t.Fatal("handler goroutine never observed its fields")
	}
	if _, ok := during[errhandler.FieldErrorCode]; ok {
		t.Errorf("handler fields during dispatch = %v, want no %s", during, errhandler.FieldErrorCode)
	}
	if during["request_id"] != "r-1" {
		t.Errorf("handler fields during dispatch = %v, want request_id kept", during)
	}

	out := logs.String()
	if !strings.Contains(out, `"request_id":"r-1"`) || !strings.Contains(out, `"error.code":"GATEWAY_TIMEOUT"`) {
		t.Errorf("timeout log = %s, want request_id and error.code", out)
	}
	if after := fields.Snapshot(); len(after) != 1 || after["request_id"] != "r-1" {
		t.Errorf("request fields after timeout = %v, want only request_id", after)
	}
}
