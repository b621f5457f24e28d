package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationError reports rejected input, split into per-field messages and
// messages about the input as a whole.
type ValidationError struct {
	baseError
	fieldErrors  map[string]string
	globalErrors []string
}

// Category always returns CategoryValidation.
func (e *ValidationError) Category() Category { return CategoryValidation }

// FieldErrors returns a copy of the per-field messages.
func (e *ValidationError) FieldErrors() map[string]string { return maps.Clone(e.fieldErrors) }

// GlobalErrors returns a copy of the messages not tied to a field.
func (e *ValidationError) GlobalErrors() []string { return slices.Clone(e.globalErrors) }

// HasFieldErrors reports whether at least one field was rejected.
func (e *ValidationError) HasFieldErrors() bool { return len(e.fieldErrors) > 0 }

// HasGlobalErrors reports whether at least one global error was recorded.
func (e *ValidationError) HasGlobalErrors() bool { return len(e.globalErrors) > 0 }

// ErrorCount returns the number of field and global errors combined.
func (e *ValidationError) ErrorCount() int { return len(e.fieldErrors) + len(e.globalErrors) }

// Build returns an immutable ValidationError. A blank message becomes
// "Validation failed with N field errors", where N counts field errors only.
// The details always carry fieldErrors, globalErrors, errorCount and
// category, overwriting caller-supplied entries with those keys.
func (b *ValidationBuilder) Build() *ValidationError {
	fieldErrors := maps.Clone(b.fieldErrors)
	if fieldErrors == nil {
		fieldErrors = make(map[string]string)
	}
	globalErrors := slices.Clone(b.globalErrors)
	if globalErrors == nil {
		globalErrors = []string{}
	}

	details := cloneDetails(b.state.details)
	details[DetailFieldErrors] = maps.Clone(fieldErrors)
	details[DetailGlobalErrors] = slices.Clone(globalErrors)
	details[DetailErrorCount] = len(fieldErrors) + len(globalErrors)
	details[DetailCategory] = string(CategoryValidation)

	base := b.state.snapshot(details)
	if strings.TrimSpace(base.message) == "" {
		base.message = fmt.Sprintf("Validation failed with %d field errors", len(fieldErrors))
	}

	return &ValidationError{
		baseError:    base,
		fieldErrors:  fieldErrors,
		globalErrors: globalErrors,
	}
}

// FieldValidationError returns a validation error for a single field.
func FieldValidationError(field, message string) *ValidationError {
	return ValidationBuilderFor(CodeFieldValidation).
		FieldError(field, message).
		Build()
}

// FieldValidationErrors returns a validation error for several fields.
func FieldValidationErrors(errs map[string]string) *ValidationError {
	return ValidationBuilderFor(CodeMultipleFieldValidation).
		FieldErrors(errs).
		Build()
}

// FieldViolation is one rejected field reported by a request binder.
type FieldViolation struct {
	Field   string
	Message string
}

// BindingResult is the outcome of binding and checking an inbound request
// before it reaches a use case.
type BindingResult interface {
	ObjectName() string
	FieldViolations() []FieldViolation
	GlobalViolations() []string
}

// ValidationErrorFromBinding converts a binding result into a typed
// validation error with the VALIDATION_ERROR code.
func ValidationErrorFromBinding(result BindingResult) *ValidationError {
	b := NewValidationBuilder(CodeValidationError.Code(),
		fmt.Sprintf("Validation failed for object '%s'", result.ObjectName()))
	for _, v := range result.FieldViolations() {
		b.FieldError(v.Field, v.Message)
	}
	for _, msg := range result.GlobalViolations() {
		b.GlobalError(msg)
	}
	return b.Build()
}
