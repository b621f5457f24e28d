package domain

import (
	"maps"
	"net/http"
	"runtime"
	"slices"
	"strconv"
)

// Category classifies a failure for logging and response shaping.
type Category string

// Failure categories. Business and validation are derived from the concrete
// domain error type; the other two describe failures that never were domain
// errors.
const (
	CategoryBusiness          Category = "BUSINESS"
	CategoryValidation        Category = "VALIDATION"
	CategoryRequestValidation Category = "REQUEST_VALIDATION"
	CategoryGeneric           Category = "GENERIC"
)

// Detail keys with a fixed meaning.
const (
	DetailCategory     = "category"
	DetailFieldErrors  = "fieldErrors"
	DetailGlobalErrors = "globalErrors"
	DetailErrorCount   = "errorCount"

	// BusinessRule is the conventional value of DetailCategory on errors
	// raised by business rule checks.
	BusinessRule = "BUSINESS_RULE"
)

// DomainError is a failure raised deliberately by application code. The set
// of implementations is closed: only [*BusinessError] and [*ValidationError]
// satisfy it.
type DomainError interface {
	error

	// Code returns the stable error code, e.g. "CUSTOMER_NOT_FOUND".
	Code() string
	// HTTPStatus returns the status the error maps to.
	HTTPStatus() int
	// Details returns a copy of the detail map. Mutating the result has no
	// effect on the error.
	Details() map[string]any
	// Category returns VALIDATION for validation errors and BUSINESS otherwise.
	Category() Category
	// StackTrace returns the call stack captured when the error was built.
	StackTrace() []string

	sealed()
}

// baseError is the state common to every domain error.
type baseError struct {
	message string
	code    string
	status  int
	details map[string]any
	cause   error
	stack   []uintptr
}

func (e *baseError) Error() string {
	return e.message
}

// Unwrap returns the error that caused this one, if any.
func (e *baseError) Unwrap() error { return e.cause }

// Code returns the stable error code.
func (e *baseError) Code() string { return e.code }

// HTTPStatus returns the status the error maps to.
func (e *baseError) HTTPStatus() int { return e.status }

// Details returns a copy of the detail map.
func (e *baseError) Details() map[string]any { return cloneDetails(e.details) }

// IsClientError reports whether the status is in the 4xx range.
func (e *baseError) IsClientError() bool {
	return e.status >= http.StatusBadRequest && e.status < http.StatusInternalServerError
}

// IsServerError reports whether the status is 5xx.
func (e *baseError) IsServerError() bool { return e.status >= http.StatusInternalServerError }

// IsBadRequest reports whether the status is 400.
func (e *baseError) IsBadRequest() bool { return e.status == http.StatusBadRequest }

// IsNotFound reports whether the status is 404.
func (e *baseError) IsNotFound() bool { return e.status == http.StatusNotFound }

// StackTrace formats the captured frames as "function (file:line)".
func (e *baseError) StackTrace() []string {
	return FormatStack(e.stack)
}

func (e *baseError) sealed() {}

// maxStackDepth bounds the number of frames captured per error.
const maxStackDepth = 32

// CaptureStack records the caller's stack, skipping skip frames above the
// caller of CaptureStack.
func CaptureStack(skip int) []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

// FormatStack resolves program counters into readable frames.
func FormatStack(pcs []uintptr) []string {
	if len(pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs)
	out := make([]string, 0, len(pcs))
	for {
		f, more := frames.Next()
		out = append(out, f.Function+" ("+f.File+":"+strconv.Itoa(f.Line)+")")
		if !more {
			break
		}
	}
	return out
}

// cloneDetails copies m one level deep so that collection values handed out
// by Details cannot be used to mutate the error.
func cloneDetails(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch tv := v.(type) {
		case map[string]string:
			out[k] = maps.Clone(tv)
		case map[string]any:
			out[k] = maps.Clone(tv)
		case []string:
			out[k] = slices.Clone(tv)
		case []any:
			out[k] = slices.Clone(tv)
		default:
			out[k] = v
		}
	}
	return out
}
