package ports

import (
	"context"

	"github.com/jsamuelsen11/go-service-errors/internal/domain/account"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/customer"
)

// CustomerService defines the service port for customer registration.
// Implemented by the application layer; called by inbound adapters (handlers).
type CustomerService interface {
	// Register validates and stores a new customer.
	// Returns a *domain.ValidationError if the customer breaks its rules and
	// CUSTOMER_ALREADY_EXISTS if the email is taken.
	Register(ctx context.Context, c *customer.Customer) (*customer.Customer, error)

	// Get returns a customer by ID.
	// Returns CUSTOMER_NOT_FOUND if the customer does not exist.
	Get(ctx context.Context, id string) (*customer.Customer, error)
}

// AccountService defines the service port for account reads and transfers.
type AccountService interface {
	// GetAccount returns an account by ID.
	GetAccount(ctx context.Context, id string) (*account.Account, error)

	// Transfer validates a transfer, checks the source balance and posts it
	// to the ledger. Returns INSUFFICIENT_FUNDS when the source account
	// cannot cover the amount.
	Transfer(ctx context.Context, t *account.Transfer) (*account.Transfer, error)
}
