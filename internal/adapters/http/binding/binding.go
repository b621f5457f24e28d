// Package binding decodes inbound request bodies and collects the
// rejections found before a request reaches a use case.
//
// A handler decodes into a request DTO, lets the DTO report missing or
// malformed fields on a Result, and hands the Result's error to the error
// dispatcher:
//
//	var req dto.CreateCustomerRequest
//	if err := binding.Bind(r, "createCustomerRequest", &req); err != nil {
//	    h.errors.WriteError(w, r, err)
//	    return
//	}
//
// Failures are reported as *Error, which satisfies domain.BindingResult.
package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-service-errors/internal/domain"
)

// MaxBodyBytes bounds the size of a decoded request body.
const MaxBodyBytes = 1 << 20

// Error reports every rejection recorded while binding one request object.
type Error struct {
	objectName string
	fields     []domain.FieldViolation
	globals    []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("binding %s: %d field and %d global violations",
		e.objectName, len(e.fields), len(e.globals))
}

// ObjectName returns the name of the bound object, e.g. "transferRequest".
func (e *Error) ObjectName() string { return e.objectName }

// FieldViolations returns the field rejections in the order they were recorded.
func (e *Error) FieldViolations() []domain.FieldViolation { return slices.Clone(e.fields) }

// GlobalViolations returns the rejections not tied to a single field.
func (e *Error) GlobalViolations() []string { return slices.Clone(e.globals) }

// FieldErrors returns the field rejections keyed by field. When a field was
// rejected more than once the last message wins.
func (e *Error) FieldErrors() map[string]string {
	out := make(map[string]string, len(e.fields))
	for _, v := range e.fields {
		out[v.Field] = v.Message
	}
	return out
}

// Result accumulates rejections for one request object. The zero value is
// not usable; create one with NewResult.
type Result struct {
	objectName string
	fields     []domain.FieldViolation
	globals    []string
}

// NewResult returns an empty Result for the named object.
func NewResult(objectName string) *Result {
	return &Result{objectName: objectName}
}

// Reject records a rejection of field.
func (r *Result) Reject(field, message string) {
	r.fields = append(r.fields, domain.FieldViolation{Field: field, Message: message})
}

// RejectGlobal records a rejection of the object as a whole.
func (r *Result) RejectGlobal(message string) {
	r.globals = append(r.globals, message)
}

// HasErrors reports whether anything was rejected.
func (r *Result) HasErrors() bool {
	return len(r.fields) > 0 || len(r.globals) > 0
}

// Err returns nil when nothing was rejected and an *Error otherwise.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &Error{
		objectName: r.objectName,
		fields:     slices.Clone(r.fields),
		globals:    slices.Clone(r.globals),
	}
}

// Validator is implemented by request DTOs that check their own shape.
type Validator interface {
	Validate(res *Result)
}

// DecodeJSON decodes the JSON body of r into dst and reports whether it
// succeeded. A value of the wrong type is recorded as a rejection of its
// field. Any other decode failure (an empty, malformed or oversized body, or
// trailing data) is recorded as a global rejection.
func DecodeJSON(w http.ResponseWriter, r *http.Request, res *Result, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(body)

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			res.Reject(typeErr.Field, "must be of type "+typeErr.Type.String())
			return false
		}
		res.RejectGlobal(describeDecodeError(err))
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		res.RejectGlobal("request body must contain a single JSON object")
		return false
	}
	return true
}

// Bind decodes the body of r into dst and runs dst's own checks. It returns
// nil when the object was bound cleanly and an *Error otherwise.
func Bind[T Validator](w http.ResponseWriter, r *http.Request, objectName string, dst T) error {
	res := NewResult(objectName)
	if DecodeJSON(w, r, res, dst) {
		dst.Validate(res)
	}
	return res.Err()
}

func describeDecodeError(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		maxErr    *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return "request body must not be empty"
	case errors.As(err, &maxErr):
		return fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "request body is not valid JSON"
	case errors.As(err, &typeErr):
		return "request body must be of type " + typeErr.Type.String()
	default:
		return "request body could not be decoded"
	}
}
