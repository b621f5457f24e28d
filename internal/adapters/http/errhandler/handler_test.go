package errhandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/binding"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/errhandler"
	"github.com/jsamuelsen11/go-service-errors/internal/domain"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/config"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/logging"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-service-errors/mocks"
)

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.FixedZone("CET", 3600))

// logSink collects JSON log records written through a context-aware handler.
type logSink struct {
	buf bytes.Buffer
}

func (s *logSink) logger() *slog.Logger {
	h := slog.NewJSONHandler(&s.buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(logging.NewContextHandler(h))
}

func (s *logSink) records(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(s.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func (s *logSink) only(t *testing.T) map[string]any {
	t.Helper()
	recs := s.records(t)
	if len(recs) != 1 {
		t.Fatalf("got %d log records, want exactly 1:\n%s", len(recs), s.buf.String())
	}
	return recs[0]
}

func newHandler(cfg config.ProblemConfig, sink *logSink, opts ...errhandler.Option) *errhandler.Handler {
	opts = append([]errhandler.Option{errhandler.WithClock(func() time.Time { return fixedNow })}, opts...)
	return errhandler.New(cfg, sink.logger(), opts...)
}

func newRequest(path string, fields *logging.Fields) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if fields != nil {
		r = r.WithContext(logging.WithFields(r.Context(), fields))
	}
	return r
}

// envelope renders p the way clients see it.
func envelope(t *testing.T, p *dto.ProblemDetail) map[string]any {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshaling problem: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decoding problem: %v", err)
	}
	return out
}

func bindingError(t *testing.T, objectName string, fields map[string]string, globals ...string) error {
	t.Helper()
	res := binding.NewResult(objectName)
	for f, m := range fields {
		res.Reject(f, m)
	}
	for _, g := range globals {
		res.RejectGlobal(g)
	}
	return res.Err()
}

func TestHandle_BusinessError(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	h := newHandler(config.DefaultProblemConfig(), sink)
	err := domain.BusinessBuilderFor(domain.CodeResourceNotFound).Detail("userId", "123").Build()

	p := h.Handle(newRequest("/api/v1/users/123", logging.NewFields()), err)
	got := envelope(t, p)

	if p.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", p.Status)
	}
	if got["detail"] != "Resource not found" {
		t.Errorf("detail = %v, want Resource not found", got["detail"])
	}
	if got["title"] != "Not Found" {
		t.Errorf("title = %v, want Not Found", got["title"])
	}
	if got["type"] != "https://api.company.com/errors/resource-not-found" {
		t.Errorf("type = %v", got["type"])
	}
	if got["instance"] != "/api/v1/users/123" {
		t.Errorf("instance = %v", got["instance"])
	}
	if got["errorCode"] != "RESOURCE_NOT_FOUND" {
		t.Errorf("errorCode = %v", got["errorCode"])
	}
	if got["userId"] != "123" {
		t.Errorf("userId = %v, want 123", got["userId"])
	}
	if got["traceId"] != "unknown" || got["spanId"] != "unknown" {
		t.Errorf("traceId/spanId = %v/%v, want unknown", got["traceId"], got["spanId"])
	}
	if got["timestamp"] != "2026-03-14T15:09:26+01:00" {
		t.Errorf("timestamp = %v", got["timestamp"])
	}
	if _, ok := got["stackTrace"]; ok {
		t.Error("stackTrace present with IncludeStackTrace=false")
	}

	rec := sink.only(t)
	if rec["level"] != "ERROR" || rec["msg"] != "Domain exception occurred" {
		t.Errorf("log level/msg = %v/%v", rec["level"], rec["msg"])
	}
	if rec[errhandler.FieldErrorCode] != "RESOURCE_NOT_FOUND" {
		t.Errorf("log %s = %v", errhandler.FieldErrorCode, rec[errhandler.FieldErrorCode])
	}
	if rec[errhandler.FieldHTTPStatus] != "404" {
		t.Errorf("log %s = %v", errhandler.FieldHTTPStatus, rec[errhandler.FieldHTTPStatus])
	}
	if rec[errhandler.FieldCategory] != "BUSINESS" {
		t.Errorf("log %s = %v", errhandler.FieldCategory, rec[errhandler.FieldCategory])
	}
	details, ok := rec["details"].(map[string]any)
	if !ok || details["userId"] != "123" {
		t.Errorf("log details = %v", rec["details"])
	}
	if rec["requestUri"] != "/api/v1/users/123" {
		t.Errorf("log requestUri = %v", rec["requestUri"])
	}
}

func TestHandle_WrappedBusinessError(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	h := newHandler(config.DefaultProblemConfig(), sink)
	err := fmt.Errorf("loading customer: %w", domain.CustomerNotFound("c-9"))

	got := envelope(t, h.Handle(newRequest("/api/v1/customers/c-9", nil), err))

	if got["status"] != float64(http.StatusNotFound) {
		t.Errorf("status = %v, want 404", got["status"])
	}
	if got["detail"] != "Customer with ID 'c-9' not found" {
		t.Errorf("detail = %v", got["detail"])
	}
	if got["category"] != domain.BusinessRule {
		t.Errorf("category detail = %v, want BUSINESS_RULE", got["category"])
	}
	if got["customerId"] != "c-9" {
		t.Errorf("customerId = %v", got["customerId"])
	}
}

func TestHandle_TypedValidationError(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	h := newHandler(config.DefaultProblemConfig(), sink)
	err := domain.NewValidationBuilder("INVALID_CUSTOMER", "").
		BadRequest().
		FieldErrors(map[string]string{"email": "must be a valid email address", "name": "is required"}).
		GlobalError("customer is incomplete").
		Build()

	p := h.Handle(newRequest("/api/v1/customers", logging.NewFields()), err)
	got := envelope(t, p)

	if p.Status != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422 regardless of builder status", p.Status)
	}
	if got["title"] != "Validation Failed" {
		t.Errorf("title = %v", got["title"])
	}
	if got["detail"] != "Validation failed with 2 field errors" {
		t.Errorf("detail = %v", got["detail"])
	}
	if got["type"] != "https://api.company.com/errors/invalid-customer" {
		t.Errorf("type = %v", got["type"])
	}
	fe, ok := got["fieldErrors"].(map[string]any)
	if !ok || fe["email"] != "must be a valid email address" || fe["name"] != "is required" {
		t.Errorf("fieldErrors = %v", got["fieldErrors"])
	}
	ge, ok := got["globalErrors"].([]any)
	if !ok || len(ge) != 1 || ge[0] != "customer is incomplete" {
		t.Errorf("globalErrors = %v", got["globalErrors"])
	}
	if got["errorCount"] != float64(3) {
		t.Errorf("errorCount = %v, want 3", got["errorCount"])
	}
	if got["category"] != "VALIDATION" {
		t.Errorf("category detail = %v", got["category"])
	}
	if _, ok := got["validationType"]; ok {
		t.Error("validationType present on a typed validation error")
	}

	rec := sink.only(t)
	if rec["level"] != "WARN" || rec["msg"] != "Validation exception occurred" {
		t.Errorf("log level/msg = %v/%v", rec["level"], rec["msg"])
	}
	if rec[errhandler.FieldCategory] != "VALIDATION" || rec[errhandler.FieldHTTPStatus] != "422" {
		t.Errorf("log category/status = %v/%v", rec[errhandler.FieldCategory], rec[errhandler.FieldHTTPStatus])
	}
	if rec[errhandler.FieldFieldCount] != "2" || rec[errhandler.FieldGlobalCount] != "1" {
		t.Errorf("log counts = %v/%v", rec[errhandler.FieldFieldCount], rec[errhandler.FieldGlobalCount])
	}
}

func TestHandle_RequestValidationRedactsLogOnly(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultProblemConfig()
	cfg.SensitiveFields = []string{"password"}

	sink := &logSink{}
	h := newHandler(cfg, sink)
	err := bindingError(t, "signupRequest", map[string]string{
		"user.password": "must be at least 8 characters",
		"user.name":     "must not be blank",
	}, "passwords must match")

	p := h.Handle(newRequest("/signup", logging.NewFields()), err)
	got := envelope(t, p)

	if p.Status != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422", p.Status)
	}
	if got["detail"] != "Validation failed for object 'signupRequest'" {
		t.Errorf("detail = %v", got["detail"])
	}
	if got["title"] != "Validation Failed" {
		t.Errorf("title = %v", got["title"])
	}
	if got["validationType"] != errhandler.ValidationTypeRequestBinding {
		t.Errorf("validationType = %v", got["validationType"])
	}
	if got["errorCode"] != "VALIDATION_ERROR" {
		t.Errorf("errorCode = %v", got["errorCode"])
	}
	if got["type"] != "https://api.company.com/errors/validation-error" {
		t.Errorf("type = %v", got["type"])
	}
	fe := got["fieldErrors"].(map[string]any)
	if fe["user.password"] != "must be at least 8 characters" {
		t.Errorf("response fieldErrors[user.password] = %v, want unredacted", fe["user.password"])
	}
	if got["errorCount"] != float64(3) {
		t.Errorf("errorCount = %v, want 3", got["errorCount"])
	}

	rec := sink.only(t)
	if rec["level"] != "WARN" || rec["msg"] != "Request validation failed" {
		t.Errorf("log level/msg = %v/%v", rec["level"], rec["msg"])
	}
	sanitized, ok := rec["sanitizedErrors"].(map[string]any)
	if !ok {
		t.Fatalf("log sanitizedErrors = %v", rec["sanitizedErrors"])
	}
	if sanitized["user.password"] != "[REDACTED] - must be at least 8 characters" {
		t.Errorf("log sanitizedErrors[user.password] = %v", sanitized["user.password"])
	}
	if sanitized["user.name"] != "must not be blank" {
		t.Errorf("log sanitizedErrors[user.name] = %v", sanitized["user.name"])
	}
	names, ok := rec["fieldNames"].([]any)
	if !ok || len(names) != 2 || names[0] != "user.name" || names[1] != "user.password" {
		t.Errorf("log fieldNames = %v", rec["fieldNames"])
	}
	if rec[errhandler.FieldCategory] != "REQUEST_VALIDATION" {
		t.Errorf("log category = %v", rec[errhandler.FieldCategory])
	}
	if rec[errhandler.FieldObjectName] != "signupRequest" {
		t.Errorf("log objectName field = %v", rec[errhandler.FieldObjectName])
	}
	if strings.Contains(sink.buf.String(), `"user.password":"must be at least 8 characters"`) {
		t.Error("log contains the unredacted message for user.password")
	}
}

func TestHandle_ServiceLoggerKeepsFieldMaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		attr  string
		field string
		want  string
	}{
		{
			name:  "business details",
			err:   domain.CustomerEmailTaken("ada@example.com"),
			attr:  "details",
			field: "email",
			want:  "ada@example.com",
		},
		{
			name:  "typed validation field errors",
			err:   domain.FieldValidationError("password", "must be at least 8 characters"),
			attr:  errhandler.ExtFieldErrors,
			field: "password",
			want:  "must be at least 8 characters",
		},
		{
			name: "binding errors keep the redaction prefix",
			err: bindingError(t, "signupRequest", map[string]string{
				"password": "must be at least 8 characters",
			}),
			attr:  "sanitizedErrors",
			field: "password",
			want:  "[REDACTED] - must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := logging.New("info", "json", &buf, logging.WithVerbatimKeys(errhandler.LoggedMapKeys...))
			h := errhandler.New(config.DefaultProblemConfig(), logger)

			h.Handle(newRequest("/api/v1/customers", logging.NewFields()), tt.err)

			var rec map[string]any
			if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
				t.Fatalf("decoding log line %q: %v", buf.String(), err)
			}
			m, ok := rec[tt.attr].(map[string]any)
			if !ok {
				t.Fatalf("log %s = %v, want an object", tt.attr, rec[tt.attr])
			}
			if m[tt.field] != tt.want {
				t.Errorf("log %s[%s] = %v, want %q", tt.attr, tt.field, m[tt.field], tt.want)
			}
		})
	}
}

func TestHandle_RequestValidationWithoutGlobals(t *testing.T) {
	t.Parallel()

	h := newHandler(config.DefaultProblemConfig(), &logSink{})
	err := bindingError(t, "transferRequest", map[string]string{"amount": "must not be null"})

	got := envelope(t, h.Handle(newRequest("/api/v1/transfers", nil), err))

	ge, ok := got["globalErrors"].([]any)
	if !ok || len(ge) != 0 {
		t.Errorf("globalErrors = %#v, want empty list", got["globalErrors"])
	}
}

func TestHandle_UnexpectedError(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	h := newHandler(config.DefaultProblemConfig(), sink)

	p := h.Handle(newRequest("/api/v1/accounts/a-1", logging.NewFields()),
		fmt.Errorf("querying ledger: %w", errors.New("connection refused to 10.0.0.7")))
	got := envelope(t, p)

	if p.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", p.Status)
	}
	if got["detail"] != "An unexpected error occurred" {
		t.Errorf("detail = %v", got["detail"])
	}
	if got["type"] != "https://api.company.com/errors/internal-server-error" {
		t.Errorf("type = %v", got["type"])
	}
	if got["exceptionType"] != "*fmt.wrapError" {
		t.Errorf("exceptionType = %v", got["exceptionType"])
	}
	data, _ := json.Marshal(p)
	if strings.Contains(string(data), "10.0.0.7") {
		t.Errorf("response leaks the error message: %s", data)
	}

	rec := sink.only(t)
	if rec["level"] != "ERROR" || rec["msg"] != "Unexpected error occurred" {
		t.Errorf("log level/msg = %v/%v", rec["level"], rec["msg"])
	}
	if rec[errhandler.FieldCategory] != "GENERIC" || rec[errhandler.FieldHTTPStatus] != "500" {
		t.Errorf("log category/status = %v/%v", rec[errhandler.FieldCategory], rec[errhandler.FieldHTTPStatus])
	}
	if !strings.Contains(fmt.Sprint(rec["error"]), "10.0.0.7") {
		t.Errorf("log error = %v, want the full chain", rec["error"])
	}
}

func TestHandle_ExposeErrorCodesDisabled(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultProblemConfig()
	cfg.ExposeErrorCodes = false
	h := newHandler(cfg, &logSink{})

	got := envelope(t, h.Handle(newRequest("/x", nil), domain.CustomerAlreadyExists("c-1")))

	if _, ok := got["errorCode"]; ok {
		t.Error("errorCode present with ExposeErrorCodes=false")
	}
	if got["type"] != "https://api.company.com/errors/customer-already-exists" {
		t.Errorf("type = %v, want the code-based URI", got["type"])
	}
}

func TestHandle_IncludeStackTrace(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultProblemConfig()
	cfg.IncludeStackTrace = true
	h := newHandler(cfg, &logSink{})

	tests := []struct {
		name string
		err  error
	}{
		{"business", domain.BusinessErrorOf(domain.CodeForbidden)},
		{"unexpected", errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := envelope(t, h.Handle(newRequest("/x", nil), tt.err))
			frames, ok := got["stackTrace"].([]any)
			if !ok || len(frames) == 0 {
				t.Fatalf("stackTrace = %v, want frames", got["stackTrace"])
			}
			if !strings.Contains(fmt.Sprint(frames[0]), ".go:") {
				t.Errorf("stackTrace[0] = %v, want file:line", frames[0])
			}
		})
	}
}

func TestHandle_IncludeCause(t *testing.T) {
	t.Parallel()

	err := domain.BusinessBuilderFor(domain.CodeServiceUnavailable).
		Cause(errors.New("ledger timed out")).
		Build()

	for _, include := range []bool{true, false} {
		cfg := config.DefaultProblemConfig()
		cfg.IncludeCause = include
		h := newHandler(cfg, &logSink{})

		got := envelope(t, h.Handle(newRequest("/x", nil), err))
		cause, ok := got["cause"]
		if include && cause != "ledger timed out" {
			t.Errorf("IncludeCause=true: cause = %v", cause)
		}
		if !include && ok {
			t.Errorf("IncludeCause=false: cause = %v, want absent", cause)
		}
	}
}

func TestHandle_DetailsMergedLast(t *testing.T) {
	t.Parallel()

	h := newHandler(config.DefaultProblemConfig(), &logSink{})
	err := domain.NewBusinessBuilder("ODD", "odd").
		Detail("traceId", "from-details").
		Detail("status", 200).
		Build()

	p := h.Handle(newRequest("/x", nil), err)
	got := envelope(t, p)

	if got["traceId"] != "from-details" {
		t.Errorf("traceId = %v, want the detail value", got["traceId"])
	}
	if got["status"] != float64(http.StatusBadRequest) {
		t.Errorf("status = %v, want the standard member to win", got["status"])
	}
}

func TestHandle_LogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		err       error
		wantLevel string
	}{
		{"error keeps business at error", config.LogLevelError, domain.CustomerNotFound("1"), "ERROR"},
		{"error keeps validation at warn", config.LogLevelError, domain.FieldValidationError("a", "b"), "WARN"},
		{"warn caps business", config.LogLevelWarn, domain.CustomerNotFound("1"), "WARN"},
		{"warn caps unexpected", config.LogLevelWarn, errors.New("x"), "WARN"},
		{"info caps validation", config.LogLevelInfo, domain.FieldValidationError("a", "b"), "INFO"},
		{"off suppresses", config.LogLevelOff, errors.New("x"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultProblemConfig()
			cfg.LogLevel = tt.level
			sink := &logSink{}
			h := newHandler(cfg, sink)

			p := h.Handle(newRequest("/x", nil), tt.err)
			if p == nil {
				t.Fatal("Handle returned nil")
			}

			recs := sink.records(t)
			if tt.wantLevel == "" {
				if len(recs) != 0 {
					t.Errorf("got %d records with level OFF, want 0", len(recs))
				}
				return
			}
			if len(recs) != 1 || recs[0]["level"] != tt.wantLevel {
				t.Errorf("records = %v, want one at %s", recs, tt.wantLevel)
			}
		})
	}
}

func TestHandle_RestoresFieldsWithoutPriorSnapshot(t *testing.T) {
	t.Parallel()

	errs := []error{
		domain.CustomerNotFound("1"),
		domain.FieldValidationError("email", "bad"),
		bindingError(t, "req", map[string]string{"email": "bad"}),
		errors.New("boom"),
	}

	for _, err := range errs {
		fields := logging.NewFields()
		h := newHandler(config.DefaultProblemConfig(), &logSink{})

		h.Handle(newRequest("/x", fields), err)

		if left := fields.Snapshot(); len(left) != 0 {
			t.Errorf("%T: fields after Handle = %v, want none", err, left)
		}
	}
}

func TestHandle_RestoresPriorSnapshotVerbatim(t *testing.T) {
	t.Parallel()

	fields := logging.NewFields()
	fields.Set("request_id", "r-1")
	fields.Set(errhandler.FieldErrorCode, "OUTER")
	before := fields.Snapshot()

	sink := &logSink{}
	h := newHandler(config.DefaultProblemConfig(), sink)
	h.Handle(newRequest("/x", fields),
		bindingError(t, "req", map[string]string{"name": "must not be blank"}))

	after := fields.Snapshot()
	if len(after) != len(before) {
		t.Fatalf("fields after Handle = %v, want %v", after, before)
	}
	for k, v := range before {
		if after[k] != v {
			t.Errorf("fields[%q] = %q, want %q", k, after[k], v)
		}
	}

	rec := sink.only(t)
	if rec["request_id"] != "r-1" {
		t.Errorf("log request_id = %v, want the ambient value", rec["request_id"])
	}
	if rec[errhandler.FieldErrorCode] != "VALIDATION_ERROR" {
		t.Errorf("log error.code = %v, want the installed value", rec[errhandler.FieldErrorCode])
	}
}

// hookHandler runs onHandle for every record before delegating.
type hookHandler struct {
	slog.Handler
	onHandle func(ctx context.Context)
}

func (h hookHandler) Handle(ctx context.Context, r slog.Record) error {
	h.onHandle(ctx)
	return h.Handler.Handle(ctx, r)
}

func TestHandle_RemovesOnlyInstalledKeys(t *testing.T) {
	t.Parallel()

	fields := logging.NewFields()

	// Unrelated code on the same context adds a key while the error is
	// being dispatched. Only the dispatcher's own keys may be removed.
	logger := slog.New(logging.NewContextHandler(hookHandler{
		Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil),
		onHandle: func(ctx context.Context) {
			logging.FieldsFromContext(ctx).Set("tenant", "acme")
		},
	}))
	h := errhandler.New(config.DefaultProblemConfig(), logger)

	h.Handle(newRequest("/x", fields), domain.CustomerNotFound("1"))

	after := fields.Snapshot()
	if v, ok := after["tenant"]; !ok || v != "acme" {
		t.Errorf("tenant = %q, %v; want it kept", v, ok)
	}
	for _, k := range []string{errhandler.FieldErrorCode, errhandler.FieldHTTPStatus, errhandler.FieldCategory} {
		if _, ok := after[k]; ok {
			t.Errorf("%s left behind", k)
		}
	}
}

func TestHandle_WithoutAmbientFieldsStillLogsKeys(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	h := newHandler(config.DefaultProblemConfig(), sink)

	h.Handle(newRequest("/x", nil), domain.CustomerNotFound("1"))

	rec := sink.only(t)
	if rec[errhandler.FieldErrorCode] != "CUSTOMER_NOT_FOUND" {
		t.Errorf("log error.code = %v", rec[errhandler.FieldErrorCode])
	}
}

func TestHandle_TraceProvider(t *testing.T) {
	t.Parallel()

	tp := mocks.NewMockTraceProvider(t)
	tp.EXPECT().CurrentIDs(mock.Anything).Return("4bf92f3577b34da6a3ce929d0e0e4736", "00f067aa0ba902b7", true)

	sink := &logSink{}
	h := newHandler(config.DefaultProblemConfig(), sink, errhandler.WithTraceProvider(tp))
	got := envelope(t, h.Handle(newRequest("/x", nil), domain.CustomerNotFound("1")))

	if got["traceId"] != "4bf92f3577b34da6a3ce929d0e0e4736" || got["spanId"] != "00f067aa0ba902b7" {
		t.Errorf("traceId/spanId = %v/%v", got["traceId"], got["spanId"])
	}
	rec := sink.only(t)
	if rec["traceId"] != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("log traceId = %v", rec["traceId"])
	}
}

func TestHandle_TraceProviderWithoutActiveSpan(t *testing.T) {
	t.Parallel()

	tp := mocks.NewMockTraceProvider(t)
	tp.EXPECT().CurrentIDs(mock.Anything).Return("", "", false)

	h := newHandler(config.DefaultProblemConfig(), &logSink{}, errhandler.WithTraceProvider(tp))
	got := envelope(t, h.Handle(newRequest("/x", nil), errors.New("boom")))

	if got["traceId"] != "unknown" || got["spanId"] != "unknown" {
		t.Errorf("traceId/spanId = %v/%v, want unknown", got["traceId"], got["spanId"])
	}
}

func TestHandle_OpenTelemetrySpan(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, span := tp.Tracer("test").Start(context.Background(), "request")
	defer span.End()

	h := newHandler(config.DefaultProblemConfig(), &logSink{},
		errhandler.WithTraceProvider(telemetry.SpanContextIDs{}))
	r := newRequest("/x", nil).WithContext(ctx)

	got := envelope(t, h.Handle(r, domain.CustomerNotFound("1")))

	if got["traceId"] != span.SpanContext().TraceID().String() {
		t.Errorf("traceId = %v, want %s", got["traceId"], span.SpanContext().TraceID())
	}
	if got["spanId"] != span.SpanContext().SpanID().String() {
		t.Errorf("spanId = %v, want %s", got["spanId"], span.SpanContext().SpanID())
	}
}

func TestHandle_RecordsMetric(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics error: %v", err)
	}

	h := newHandler(config.DefaultProblemConfig(), &logSink{}, errhandler.WithMetrics(metrics))
	h.Handle(newRequest("/x", nil), domain.CustomerNotFound("1"))
	h.Handle(newRequest("/x", nil), errors.New("boom"))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	byCategory := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "problem.responses.total" {
				continue
			}
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				cat, _ := dp.Attributes.Value(telemetry.AttrErrorCategory)
				byCategory[cat.AsString()] += dp.Value
			}
		}
	}
	if byCategory["BUSINESS"] != 1 || byCategory["GENERIC"] != 1 {
		t.Errorf("problem.responses.total by category = %v", byCategory)
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	h := newHandler(config.DefaultProblemConfig(), &logSink{})
	w := httptest.NewRecorder()

	h.WriteError(w, newRequest("/api/v1/customers/1", nil), domain.CustomerAlreadyExists("1"))

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != dto.ProblemContentType {
		t.Errorf("Content-Type = %q", ct)
	}
	var got map[string]any
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got["errorCode"] != "CUSTOMER_ALREADY_EXISTS" {
		t.Errorf("errorCode = %v", got["errorCode"])
	}
}

func TestNew_NilLogger(t *testing.T) {
	t.Parallel()

	h := errhandler.New(config.DefaultProblemConfig(), nil)
	if p := h.Handle(newRequest("/x", nil), errors.New("boom")); p.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", p.Status)
	}
}
