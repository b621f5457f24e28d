package ports

import (
	"context"

	"github.com/jsamuelsen11/go-service-errors/internal/domain/customer"
)

// CustomerRepository stores customers.
type CustomerRepository interface {
	// Create stores c and assigns its ID and creation time.
	// Returns CUSTOMER_ALREADY_EXISTS if the email is already registered.
	Create(ctx context.Context, c *customer.Customer) (*customer.Customer, error)

	// Get returns the customer with the given ID.
	// Returns CUSTOMER_NOT_FOUND if there is none.
	Get(ctx context.Context, id string) (*customer.Customer, error)
}
