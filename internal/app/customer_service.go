// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Services return domain errors unchanged and do not log failures; the HTTP
// error dispatcher logs each failed request exactly once.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-service-errors/internal/domain/customer"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

var _ ports.CustomerService = (*CustomerService)(nil)

// CustomerService implements ports.CustomerService on top of a
// CustomerRepository.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger *slog.Logger
}

// NewCustomerService creates a CustomerService. A nil logger discards output.
func NewCustomerService(repo ports.CustomerRepository, logger *slog.Logger) *CustomerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CustomerService{repo: repo, logger: logger}
}

// Register validates c against the customer rules and stores it.
func (s *CustomerService) Register(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "customer registered", slog.String("customer_id", created.ID))
	return created, nil
}

// Get returns the customer with the given ID.
func (s *CustomerService) Get(ctx context.Context, id string) (*customer.Customer, error) {
	return s.repo.Get(ctx, id)
}
