// Package errhandler is the single place where failures become HTTP
// responses. Every error handed to it is classified into one of four
// branches, logged exactly once and rendered as an RFC 9457 problem:
//
//   - *binding.Error: the request could not be bound (422, REQUEST_VALIDATION)
//   - *domain.ValidationError: a use case rejected its input (422, VALIDATION)
//   - any other domain.DomainError: a business rule failed (own status, BUSINESS)
//   - anything else: an unexpected failure (500, GENERIC)
//
// While an error is dispatched its code, status and category are installed
// into the request's ambient log fields so that the log event carries them.
// The fields are restored before Handle returns.
package errhandler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/binding"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-service-errors/internal/domain"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/config"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/logging"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

// Problem extension members.
const (
	ExtTimestamp      = "timestamp"
	ExtTraceID        = "traceId"
	ExtSpanID         = "spanId"
	ExtErrorCode      = "errorCode"
	ExtFieldErrors    = "fieldErrors"
	ExtGlobalErrors   = "globalErrors"
	ExtErrorCount     = "errorCount"
	ExtValidationType = "validationType"
	ExtStackTrace     = "stackTrace"
	ExtExceptionType  = "exceptionType"
	ExtCause          = "cause"
)

// Log attributes holding detail or field-error maps. Their contents mirror
// the problem body, and binding messages for sensitive fields are already
// prefixed with RedactedPrefix, so loggers must not mask them by key.
const (
	logDetails         = "details"
	logSanitizedErrors = "sanitizedErrors"
)

// LoggedMapKeys lists the top-level log attributes whose map keys are field
// names rather than credentials. Pass it to logging.WithVerbatimKeys.
var LoggedMapKeys = []string{logDetails, ExtFieldErrors, ExtGlobalErrors, logSanitizedErrors}

const (
	// ValidationTypeRequestBinding marks problems raised by request binding.
	ValidationTypeRequestBinding = "REQUEST_BINDING"

	// RedactedPrefix precedes logged messages for sensitive fields.
	RedactedPrefix = "[REDACTED] - "

	titleValidationFailed = "Validation Failed"
	detailUnexpected      = "An unexpected error occurred"
	unknownID             = "unknown"
)

// Handler translates errors into problem responses.
type Handler struct {
	cfg     config.ProblemConfig
	logger  *slog.Logger
	tracer  ports.TraceProvider
	metrics *telemetry.Metrics
	now     func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithTraceProvider sets where trace and span IDs are read from. Without one
// both IDs are reported as "unknown".
func WithTraceProvider(tp ports.TraceProvider) Option {
	return func(h *Handler) { h.tracer = tp }
}

// WithMetrics records every dispatched problem on m.ProblemResponseTotal.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithClock overrides the source of problem timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// New creates a Handler. A nil logger discards dispatcher log events.
func New(cfg config.ProblemConfig, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// WriteError dispatches err and writes the resulting problem to w.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	dto.WriteProblem(w, r, h.Handle(r, err))
}

// Handle classifies err, emits one log event for it and returns the problem
// to send. The ambient log fields of r's context are restored on return.
func (h *Handler) Handle(r *http.Request, err error) *dto.ProblemDetail {
	ctx := r.Context()
	fields := logging.FieldsFromContext(ctx)
	if fields == nil {
		fields = logging.NewFields()
		ctx = logging.WithFields(ctx, fields)
	}

	scope := openScope(fields)
	defer scope.restore()

	d := dispatch{
		Handler: h,
		ctx:     ctx,
		req:     r,
		scope:   scope,
	}
	d.traceID, d.spanID = h.traceIDs(ctx)

	var (
		bindErr *binding.Error
		valErr  *domain.ValidationError
		domErr  domain.DomainError
		p       *dto.ProblemDetail
		cat     domain.Category
	)
	switch {
	case errors.As(err, &bindErr):
		p, cat = d.requestValidation(bindErr), domain.CategoryRequestValidation
	case errors.As(err, &valErr):
		p, cat = d.validation(err, valErr), domain.CategoryValidation
	case errors.As(err, &domErr):
		p, cat = d.business(err, domErr), domErr.Category()
	default:
		p, cat = d.unexpected(err), domain.CategoryGeneric
	}

	h.record(ctx, cat, p)
	return p
}

func (h *Handler) traceIDs(ctx context.Context) (traceID, spanID string) {
	if h.tracer != nil {
		if t, s, ok := h.tracer.CurrentIDs(ctx); ok {
			return t, s
		}
	}
	return unknownID, unknownID
}

func (h *Handler) record(ctx context.Context, cat domain.Category, p *dto.ProblemDetail) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		telemetry.AttrErrorCategory.String(string(cat)),
		telemetry.AttrHTTPStatus.Int(p.Status),
	)
	if p.Status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, p.Detail)
	}

	if h.metrics != nil {
		h.metrics.ProblemResponseTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrErrorCategory.String(string(cat)),
			telemetry.AttrHTTPStatus.Int(p.Status),
		))
	}
}

// level applies the configured ceiling to the natural severity of an event.
func (h *Handler) level(natural slog.Level) slog.Level {
	switch strings.ToUpper(h.cfg.LogLevel) {
	case config.LogLevelWarn:
		return min(natural, slog.LevelWarn)
	case config.LogLevelInfo:
		return min(natural, slog.LevelInfo)
	default:
		return natural
	}
}

// dispatch carries the state of one Handle call.
type dispatch struct {
	*Handler
	ctx     context.Context
	req     *http.Request
	scope   *fieldScope
	traceID string
	spanID  string
}

func (d *dispatch) install(code string, status int, cat domain.Category) {
	d.scope.set(FieldErrorCode, code)
	d.scope.set(FieldHTTPStatus, strconv.Itoa(status))
	d.scope.set(FieldCategory, string(cat))
}

func (d *dispatch) log(natural slog.Level, msg string, attrs ...slog.Attr) {
	if !d.cfg.ShouldLogErrors() {
		return
	}
	base := []slog.Attr{
		slog.String(ExtTraceID, d.traceID),
		slog.String(ExtSpanID, d.spanID),
		slog.String("requestUri", d.req.URL.Path),
	}
	d.logger.LogAttrs(d.ctx, d.level(natural), msg, append(base, attrs...)...)
}

// problem returns the envelope shared by every branch.
func (d *dispatch) problem(status int, detail, code string) *dto.ProblemDetail {
	p := dto.NewProblemDetail(status, detail)
	p.Type = d.cfg.BuildErrorTypeURI(code)
	p.Instance = d.req.URL.Path
	p.Set(ExtTimestamp, d.now().Format(time.RFC3339Nano))
	p.Set(ExtTraceID, d.traceID)
	p.Set(ExtSpanID, d.spanID)
	if d.cfg.ExposeErrorCodes {
		p.Set(ExtErrorCode, code)
	}
	return p
}

func (d *dispatch) setCause(p *dto.ProblemDetail, de domain.DomainError) {
	if !d.cfg.IncludeCause {
		return
	}
	if cause := errors.Unwrap(de); cause != nil {
		p.Set(ExtCause, cause.Error())
	}
}

// mergeDetails copies every detail entry onto p, replacing members already set.
func mergeDetails(p *dto.ProblemDetail, details map[string]any) {
	for k, v := range details {
		p.Set(k, v)
	}
}

func (d *dispatch) business(err error, de domain.DomainError) *dto.ProblemDetail {
	code, status := de.Code(), de.HTTPStatus()
	d.install(code, status, de.Category())

	details := de.Details()
	d.log(slog.LevelError, "Domain exception occurred",
		slog.String(ExtErrorCode, code),
		slog.Int("httpStatus", status),
		slog.Any(logDetails, details),
		slog.Any("error", err),
	)

	p := d.problem(status, de.Error(), code)
	if d.cfg.IncludeStackTrace {
		p.Set(ExtStackTrace, de.StackTrace())
	}
	d.setCause(p, de)
	mergeDetails(p, details)
	return p
}

func (d *dispatch) validation(err error, ve *domain.ValidationError) *dto.ProblemDetail {
	code := ve.Code()
	fieldErrors, globalErrors := ve.FieldErrors(), ve.GlobalErrors()

	d.install(code, http.StatusUnprocessableEntity, domain.CategoryValidation)
	d.scope.set(FieldFieldCount, strconv.Itoa(len(fieldErrors)))
	d.scope.set(FieldGlobalCount, strconv.Itoa(len(globalErrors)))

	d.log(slog.LevelWarn, "Validation exception occurred",
		slog.String(ExtErrorCode, code),
		slog.Any(ExtFieldErrors, fieldErrors),
		slog.Any(ExtGlobalErrors, globalErrors),
		slog.Any("error", err),
	)

	p := d.problem(http.StatusUnprocessableEntity, ve.Error(), code)
	p.Title = titleValidationFailed
	p.Set(ExtFieldErrors, fieldErrors)
	p.Set(ExtGlobalErrors, globalErrors)
	p.Set(ExtErrorCount, ve.ErrorCount())
	d.setCause(p, ve)
	mergeDetails(p, ve.Details())
	return p
}

func (d *dispatch) requestValidation(be *binding.Error) *dto.ProblemDetail {
	code := domain.CodeValidationError.Code()
	objectName := be.ObjectName()
	fieldErrors := be.FieldErrors()
	globalErrors := be.GlobalViolations()
	if globalErrors == nil {
		globalErrors = []string{}
	}

	sanitized := make(map[string]string, len(fieldErrors))
	for field, msg := range fieldErrors {
		if d.cfg.IsSensitiveField(field) {
			msg = RedactedPrefix + msg
		}
		sanitized[field] = msg
	}

	d.install(code, http.StatusUnprocessableEntity, domain.CategoryRequestValidation)
	d.scope.set(FieldFieldCount, strconv.Itoa(len(fieldErrors)))
	d.scope.set(FieldGlobalCount, strconv.Itoa(len(globalErrors)))
	d.scope.set(FieldObjectName, objectName)

	d.log(slog.LevelWarn, "Request validation failed",
		slog.String(ExtErrorCode, code),
		slog.String("objectName", objectName),
		slog.Int("fieldErrorCount", len(fieldErrors)),
		slog.Any("fieldNames", slices.Sorted(maps.Keys(sanitized))),
		slog.Any(logSanitizedErrors, sanitized),
		slog.Int("globalErrorCount", len(globalErrors)),
	)

	detail := fmt.Sprintf("Validation failed for object '%s'", objectName)
	p := d.problem(http.StatusUnprocessableEntity, detail, code)
	p.Title = titleValidationFailed
	p.Set(ExtValidationType, ValidationTypeRequestBinding)
	p.Set(ExtFieldErrors, fieldErrors)
	p.Set(ExtGlobalErrors, globalErrors)
	p.Set(ExtErrorCount, len(fieldErrors)+len(globalErrors))
	return p
}

// stackTracer is implemented by errors that carry their own call stack.
type stackTracer interface {
	StackTrace() []string
}

func (d *dispatch) unexpected(err error) *dto.ProblemDetail {
	code := domain.CodeInternalServerError.Code()
	exceptionType := fmt.Sprintf("%T", err)
	d.install(code, http.StatusInternalServerError, domain.CategoryGeneric)

	d.log(slog.LevelError, "Unexpected error occurred",
		slog.String(ExtExceptionType, exceptionType),
		slog.Any("error", err),
	)

	p := d.problem(http.StatusInternalServerError, detailUnexpected, code)
	p.Set(ExtExceptionType, exceptionType)
	if d.cfg.IncludeStackTrace {
		var st stackTracer
		if errors.As(err, &st) {
			p.Set(ExtStackTrace, st.StackTrace())
		} else {
			p.Set(ExtStackTrace, domain.FormatStack(domain.CaptureStack(1)))
		}
	}
	return p
}
