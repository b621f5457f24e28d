package domain

import "fmt"

// BusinessError reports a violated business rule. Its status is chosen by
// whoever raises it.
type BusinessError struct {
	baseError
}

// Category always returns CategoryBusiness.
func (e *BusinessError) Category() Category { return CategoryBusiness }

// BusinessErrorOf builds a business error from ec, reading keyValues as
// alternating key/value pairs. A trailing key without a value is dropped.
// Keys that are not strings are formatted with fmt.Sprint.
func BusinessErrorOf(ec ErrorCode, keyValues ...any) *BusinessError {
	b := BusinessBuilderFor(ec)
	for i := 0; i+1 < len(keyValues); i += 2 {
		b.Detail(detailKey(keyValues[i]), keyValues[i+1])
	}
	return b.Build()
}

func detailKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// CustomerAlreadyExists reports that a customer with the given ID is
// already registered.
func CustomerAlreadyExists(customerID string) *BusinessError {
	return NewBusinessBuilder(CodeCustomerAlreadyExists.Code(),
		fmt.Sprintf("Customer with ID '%s' already exists", customerID)).
		Conflict().
		Detail("customerId", customerID).
		Detail(DetailCategory, BusinessRule).
		Build()
}

// CustomerEmailTaken reports that another customer already registered
// email.
func CustomerEmailTaken(email string) *BusinessError {
	return NewBusinessBuilder(CodeCustomerAlreadyExists.Code(),
		fmt.Sprintf("Customer with email '%s' already exists", email)).
		Conflict().
		Detail("email", email).
		Detail(DetailCategory, BusinessRule).
		Build()
}

// CustomerNotFound reports that no customer has the given ID.
func CustomerNotFound(customerID string) *BusinessError {
	return NewBusinessBuilder(CodeCustomerNotFound.Code(),
		fmt.Sprintf("Customer with ID '%s' not found", customerID)).
		NotFound().
		Detail("customerId", customerID).
		Detail(DetailCategory, BusinessRule).
		Build()
}

// InsufficientFunds reports that accountID cannot cover required.
func InsufficientFunds(accountID string, required, available float64) *BusinessError {
	return BusinessBuilderFor(CodeInsufficientFunds).
		Detail("accountId", accountID).
		Detail("required", required).
		Detail("available", available).
		Detail("shortfall", required-available).
		Detail(DetailCategory, BusinessRule).
		Build()
}
