package dto

import (
	"strings"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/binding"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/account"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/customer"
)

const msgRequired = "must not be blank"

// CreateCustomerRequest represents the JSON body for registering a customer.
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Validate records missing required fields on res. Format rules belong to
// the customer entity.
func (r *CreateCustomerRequest) Validate(res *binding.Result) {
	if strings.TrimSpace(r.Name) == "" {
		res.Reject("name", msgRequired)
	}
	if strings.TrimSpace(r.Email) == "" {
		res.Reject("email", msgRequired)
	}
}

// ToCustomer maps the request onto a new, unsaved customer.
func (r *CreateCustomerRequest) ToCustomer() *customer.Customer {
	return &customer.Customer{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.PhoneNumber),
	}
}

// TransferRequest represents the JSON body for moving money between accounts.
type TransferRequest struct {
	FromAccountID string   `json:"fromAccountId"`
	ToAccountID   string   `json:"toAccountId"`
	Amount        *float64 `json:"amount"`
	Currency      string   `json:"currency"`
}

// Validate records missing required fields on res.
func (r *TransferRequest) Validate(res *binding.Result) {
	if strings.TrimSpace(r.FromAccountID) == "" {
		res.Reject("fromAccountId", msgRequired)
	}
	if strings.TrimSpace(r.ToAccountID) == "" {
		res.Reject("toAccountId", msgRequired)
	}
	if r.Amount == nil {
		res.Reject("amount", "must not be null")
	}
	if strings.TrimSpace(r.Currency) == "" {
		res.Reject("currency", msgRequired)
	}
}

// ToTransfer maps the request onto an unsubmitted transfer.
func (r *TransferRequest) ToTransfer() *account.Transfer {
	t := &account.Transfer{
		FromAccountID: strings.TrimSpace(r.FromAccountID),
		ToAccountID:   strings.TrimSpace(r.ToAccountID),
		Currency:      strings.ToUpper(strings.TrimSpace(r.Currency)),
	}
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	return t
}
