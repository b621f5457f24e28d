package domain

import (
	"maps"
	"net/http"
)

// builderState accumulates the fields shared by every domain error builder.
type builderState struct {
	code    string
	message string
	status  int
	details map[string]any
	cause   error
}

func newBuilderState(code, message string, status int) builderState {
	return builderState{
		code:    code,
		message: message,
		status:  status,
		details: make(map[string]any),
	}
}

func (s *builderState) setDetail(key string, value any) {
	s.details[key] = value
}

func (s *builderState) mergeDetails(details map[string]any) {
	maps.Copy(s.details, details)
}

// snapshot copies the accumulated state into a baseError. The stack starts
// at the caller of the builder's Build method.
func (s *builderState) snapshot(details map[string]any) baseError {
	return baseError{
		message: s.message,
		code:    s.code,
		status:  s.status,
		details: details,
		cause:   s.cause,
		stack:   CaptureStack(2),
	}
}

// BusinessBuilder constructs a [*BusinessError]. Builders are not safe for
// concurrent use.
type BusinessBuilder struct {
	state builderState
}

// NewBusinessBuilder starts a business error with an explicit code and
// message. The status defaults to 400.
func NewBusinessBuilder(code, message string) *BusinessBuilder {
	return &BusinessBuilder{state: newBuilderState(code, message, http.StatusBadRequest)}
}

// BusinessBuilderFor starts a business error seeded with the code, default
// message and status of ec.
func BusinessBuilderFor(ec ErrorCode) *BusinessBuilder {
	return &BusinessBuilder{state: newBuilderState(ec.Code(), ec.DefaultMessage(), ec.HTTPStatus())}
}

// HTTPStatus overrides the response status.
func (b *BusinessBuilder) HTTPStatus(status int) *BusinessBuilder {
	b.state.status = status
	return b
}

// BadRequest sets the status to 400.
func (b *BusinessBuilder) BadRequest() *BusinessBuilder { return b.HTTPStatus(http.StatusBadRequest) }

// NotFound sets the status to 404.
func (b *BusinessBuilder) NotFound() *BusinessBuilder { return b.HTTPStatus(http.StatusNotFound) }

// Conflict sets the status to 409.
func (b *BusinessBuilder) Conflict() *BusinessBuilder { return b.HTTPStatus(http.StatusConflict) }

// UnprocessableEntity sets the status to 422.
func (b *BusinessBuilder) UnprocessableEntity() *BusinessBuilder {
	return b.HTTPStatus(http.StatusUnprocessableEntity)
}

// Detail sets one detail entry. A repeated key replaces the earlier value.
func (b *BusinessBuilder) Detail(key string, value any) *BusinessBuilder {
	b.state.setDetail(key, value)
	return b
}

// Details merges details into the accumulated map, last write wins.
func (b *BusinessBuilder) Details(details map[string]any) *BusinessBuilder {
	b.state.mergeDetails(details)
	return b
}

// Cause records the underlying error returned by Unwrap.
func (b *BusinessBuilder) Cause(err error) *BusinessBuilder {
	b.state.cause = err
	return b
}

// Build returns an immutable BusinessError. Later calls on the builder do not
// affect errors it already produced.
func (b *BusinessBuilder) Build() *BusinessError {
	return &BusinessError{baseError: b.state.snapshot(cloneDetails(b.state.details))}
}

// ValidationBuilder constructs a [*ValidationError]. Builders are not safe
// for concurrent use.
type ValidationBuilder struct {
	state        builderState
	fieldErrors  map[string]string
	globalErrors []string
}

// NewValidationBuilder starts a validation error with an explicit code and
// message. The status defaults to 422. A blank message is replaced at Build
// time with one that reports the number of field errors.
func NewValidationBuilder(code, message string) *ValidationBuilder {
	return &ValidationBuilder{
		state:       newBuilderState(code, message, http.StatusUnprocessableEntity),
		fieldErrors: make(map[string]string),
	}
}

// ValidationBuilderFor starts a validation error seeded from ec.
func ValidationBuilderFor(ec ErrorCode) *ValidationBuilder {
	return &ValidationBuilder{
		state:       newBuilderState(ec.Code(), ec.DefaultMessage(), ec.HTTPStatus()),
		fieldErrors: make(map[string]string),
	}
}

// HTTPStatus overrides the response status. Validation failures are expected
// to stay at 422; the HTTP dispatcher responds with 422 regardless.
func (b *ValidationBuilder) HTTPStatus(status int) *ValidationBuilder {
	b.state.status = status
	return b
}

// BadRequest sets the status to 400.
func (b *ValidationBuilder) BadRequest() *ValidationBuilder { return b.HTTPStatus(http.StatusBadRequest) }

// NotFound sets the status to 404.
func (b *ValidationBuilder) NotFound() *ValidationBuilder { return b.HTTPStatus(http.StatusNotFound) }

// Conflict sets the status to 409.
func (b *ValidationBuilder) Conflict() *ValidationBuilder { return b.HTTPStatus(http.StatusConflict) }

// UnprocessableEntity sets the status to 422.
func (b *ValidationBuilder) UnprocessableEntity() *ValidationBuilder {
	return b.HTTPStatus(http.StatusUnprocessableEntity)
}

// Detail sets one detail entry. The keys fieldErrors, globalErrors,
// errorCount and category are overwritten by Build.
func (b *ValidationBuilder) Detail(key string, value any) *ValidationBuilder {
	b.state.setDetail(key, value)
	return b
}

// Details merges details into the accumulated map, last write wins.
func (b *ValidationBuilder) Details(details map[string]any) *ValidationBuilder {
	b.state.mergeDetails(details)
	return b
}

// Cause records the underlying error returned by Unwrap.
func (b *ValidationBuilder) Cause(err error) *ValidationBuilder {
	b.state.cause = err
	return b
}

// FieldError records a message for field, replacing any earlier message for
// the same field.
func (b *ValidationBuilder) FieldError(field, message string) *ValidationBuilder {
	b.fieldErrors[field] = message
	return b
}

// FieldErrors merges errors keyed by field name, last write wins.
func (b *ValidationBuilder) FieldErrors(errs map[string]string) *ValidationBuilder {
	maps.Copy(b.fieldErrors, errs)
	return b
}

// GlobalError appends an error that is not tied to a single field.
// Duplicates are kept.
func (b *ValidationBuilder) GlobalError(message string) *ValidationBuilder {
	b.globalErrors = append(b.globalErrors, message)
	return b
}

// GlobalErrors appends messages in order.
func (b *ValidationBuilder) GlobalErrors(messages []string) *ValidationBuilder {
	b.globalErrors = append(b.globalErrors, messages...)
	return b
}
