// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 problem details for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-service-errors/internal/domain/account"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/customer"
)

// CustomerResponse represents a customer in HTTP responses.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// ToCustomerResponse converts a domain customer to its HTTP representation.
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.Phone,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// AccountResponse represents an account in HTTP responses.
type AccountResponse struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	Balance    float64 `json:"balance"`
	Currency   string  `json:"currency"`
}

// ToAccountResponse converts a domain account to its HTTP representation.
func ToAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Balance:    a.Balance,
		Currency:   a.Currency,
	}
}

// TransferResponse represents an accepted transfer in HTTP responses.
type TransferResponse struct {
	ID            string  `json:"id"`
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// ToTransferResponse converts a posted transfer to its HTTP representation.
func ToTransferResponse(t *account.Transfer) TransferResponse {
	return TransferResponse{
		ID:            t.ID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Currency:      t.Currency,
	}
}

// HealthResponse represents the readiness report.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
