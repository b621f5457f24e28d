package domain

import (
	"fmt"
	"strings"
)

// ErrorCode pairs a stable error identifier with a default message and the
// HTTP status it maps to. The zero value is not useful; construct codes with
// [NewErrorCode] or [ErrorCodeOf].
type ErrorCode struct {
	code           string
	defaultMessage string
	httpStatus     int
}

// NewErrorCode returns an ErrorCode with an explicit default message.
func NewErrorCode(code, message string, httpStatus int) ErrorCode {
	return ErrorCode{code: code, defaultMessage: message, httpStatus: httpStatus}
}

// ErrorCodeOf returns an ErrorCode whose default message is derived from the
// code: underscores become spaces and the result is lowercased, so
// "RESOURCE_NOT_FOUND" reads "resource not found".
func ErrorCodeOf(code string, httpStatus int) ErrorCode {
	return NewErrorCode(code, strings.ToLower(strings.ReplaceAll(code, "_", " ")), httpStatus)
}

// Code returns the stable identifier.
func (c ErrorCode) Code() string { return c.code }

// DefaultMessage returns the message used when a builder is seeded from c.
func (c ErrorCode) DefaultMessage() string { return c.defaultMessage }

// HTTPStatus returns the status code the error family maps to.
func (c ErrorCode) HTTPStatus() int { return c.httpStatus }

func (c ErrorCode) String() string {
	return fmt.Sprintf("%s(%d)", c.code, c.httpStatus)
}
