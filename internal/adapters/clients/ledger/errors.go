// Package ledger is the outbound adapter for the downstream ledger API. It
// translates the ledger's wire representations into domain types and its
// failures into domain errors, so the error dispatcher renders a downstream
// rejection exactly as it would render a local one.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-service-errors/internal/domain"
)

// ServiceName identifies the ledger in traces, metrics, health checks, and
// error details.
const ServiceName = "ledger-api"

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// Problem members the ledger uses to carry typed errors.
const (
	extErrorCode    = "errorCode"
	extFieldErrors  = "fieldErrors"
	extGlobalErrors = "globalErrors"
	extDetails      = "details"
)

// TranslateHTTPError maps a non-success ledger response to a domain error.
//
// A problem+json body carrying an errorCode is rebuilt with that code: as a
// validation error when it lists field or global errors, otherwise as a
// business error. Server errors always become SERVICE_UNAVAILABLE so
// downstream internals never reach our clients. Remaining statuses fall back
// to the shared catalog.
func TranslateHTTPError(resp *http.Response) error {
	if resp.StatusCode >= http.StatusInternalServerError {
		return unavailable(fmt.Errorf("ledger responded %d", resp.StatusCode)).
			Detail("downstreamStatus", resp.StatusCode).
			Build()
	}

	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	if code, ok := pd.Extensions[extErrorCode].(string); ok && code != "" {
		return fromProblem(pd, code, detail, resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.NewBusinessBuilder(domain.CodeResourceNotFound.Code(), detail).
			NotFound().
			Build()

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewValidationBuilder(domain.CodeValidationError.Code(), detail).
			HTTPStatus(resp.StatusCode).
			GlobalError(detail).
			Build()

	case http.StatusConflict:
		return domain.NewBusinessBuilder(domain.CodeResourceAlreadyExists.Code(), detail).
			Conflict().
			Build()

	default:
		// Auth failures against the ledger are our misconfiguration, not the
		// caller's, so they surface as unexpected errors.
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, ServiceName, detail)
	}
}

// TranslateTransportError maps a failure to obtain any ledger response. An
// open breaker and network failures become SERVICE_UNAVAILABLE; context
// cancellation and deadlines pass through wrapped.
func TranslateTransportError(method, path string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	b := unavailable(err)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		b.Detail("circuitBreaker", "open")
	}
	return b.Build()
}

func unavailable(cause error) *domain.BusinessBuilder {
	return domain.BusinessBuilderFor(domain.CodeServiceUnavailable).
		Detail("service", ServiceName).
		Cause(cause)
}

// fromProblem rebuilds a typed domain error from a ledger problem.
func fromProblem(pd dto.ProblemDetail, code, detail string, status int) error {
	fieldErrors := stringMap(pd.Extensions[extFieldErrors])
	globalErrors := stringSlice(pd.Extensions[extGlobalErrors])
	details, _ := pd.Extensions[extDetails].(map[string]any)

	if len(fieldErrors) > 0 || len(globalErrors) > 0 {
		return domain.NewValidationBuilder(code, detail).
			HTTPStatus(status).
			FieldErrors(fieldErrors).
			GlobalErrors(globalErrors).
			Details(details).
			Build()
	}

	return domain.NewBusinessBuilder(code, detail).
		HTTPStatus(status).
		Details(details).
		Detail("service", ServiceName).
		Build()
}

// parseProblemDetail reads an RFC 9457 body from the response. It returns an
// empty problem if the body is absent, not problem+json, or malformed.
func parseProblemDetail(resp *http.Response) dto.ProblemDetail {
	if resp.Body == nil {
		return dto.ProblemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, dto.ProblemContentType) {
		return dto.ProblemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return dto.ProblemDetail{}
	}

	var pd dto.ProblemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return dto.ProblemDetail{}
	}
	return pd
}

func stringMap(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		out[k] = fmt.Sprint(val)
	}
	return out
}

func stringSlice(v any) []string {
	s, ok := v.([]any)
	if !ok || len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for _, val := range s {
		out = append(out, fmt.Sprint(val))
	}
	return out
}
