package domain

import "net/http"

// Common error codes shared across services. Application-specific codes are
// declared next to the code that raises them.
var (
	CodeResourceNotFound      = NewErrorCode("RESOURCE_NOT_FOUND", "Resource not found", http.StatusNotFound)
	CodeResourceAlreadyExists = NewErrorCode("RESOURCE_ALREADY_EXISTS", "Resource already exists", http.StatusConflict)
	CodeValidationError       = NewErrorCode("VALIDATION_ERROR", "Validation failed", http.StatusUnprocessableEntity)
	CodeFieldValidation       = NewErrorCode("FIELD_VALIDATION_ERROR", "Field validation failed",
		http.StatusUnprocessableEntity)
	CodeMultipleFieldValidation = NewErrorCode("MULTIPLE_FIELD_VALIDATION_ERROR", "Multiple field validation errors",
		http.StatusUnprocessableEntity)
	CodeUnauthorized        = NewErrorCode("UNAUTHORIZED", "Unauthorized access", http.StatusUnauthorized)
	CodeForbidden           = NewErrorCode("FORBIDDEN", "Access forbidden", http.StatusForbidden)
	CodeInternalServerError = NewErrorCode("INTERNAL_SERVER_ERROR", "Internal server error",
		http.StatusInternalServerError)
	CodeServiceUnavailable = NewErrorCode("SERVICE_UNAVAILABLE", "Service temporarily unavailable",
		http.StatusServiceUnavailable)
)

// Codes raised by the customer and transfer use cases.
var (
	CodeCustomerAlreadyExists = ErrorCodeOf("CUSTOMER_ALREADY_EXISTS", http.StatusConflict)
	CodeCustomerNotFound      = ErrorCodeOf("CUSTOMER_NOT_FOUND", http.StatusNotFound)
	CodeAccountNotFound       = NewErrorCode("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	CodeInsufficientFunds     = NewErrorCode("INSUFFICIENT_FUNDS", "Insufficient funds for transaction",
		http.StatusBadRequest)
	CodeInvalidTransfer = NewErrorCode("INVALID_TRANSFER", "Transfer request is invalid",
		http.StatusUnprocessableEntity)
	CodeRouteNotFound    = NewErrorCode("ROUTE_NOT_FOUND", "No route matches the request path", http.StatusNotFound)
	CodeMethodNotAllowed = NewErrorCode("METHOD_NOT_ALLOWED", "Method not allowed for this route",
		http.StatusMethodNotAllowed)
	CodeGatewayTimeout = NewErrorCode("GATEWAY_TIMEOUT", "Request did not complete in time",
		http.StatusGatewayTimeout)
)

// CommonCodes returns the catalog of shared error codes in declaration order.
func CommonCodes() []ErrorCode {
	return []ErrorCode{
		CodeResourceNotFound,
		CodeResourceAlreadyExists,
		CodeValidationError,
		CodeFieldValidation,
		CodeMultipleFieldValidation,
		CodeUnauthorized,
		CodeForbidden,
		CodeInternalServerError,
		CodeServiceUnavailable,
	}
}

// ServiceCodes returns the codes raised by this service's own use cases.
func ServiceCodes() []ErrorCode {
	return []ErrorCode{
		CodeCustomerAlreadyExists,
		CodeCustomerNotFound,
		CodeAccountNotFound,
		CodeInsufficientFunds,
		CodeInvalidTransfer,
		CodeRouteNotFound,
		CodeMethodNotAllowed,
		CodeGatewayTimeout,
	}
}
