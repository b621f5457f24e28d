// Package memory provides in-process implementations of the repository ports.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-service-errors/internal/domain"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/customer"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository keeps customers in a map keyed by ID, with a secondary
// index on the lowercased email address.
type CustomerRepository struct {
	mu      sync.RWMutex
	byID    map[string]customer.Customer
	byEmail map[string]string
	now     func() time.Time
	newID   func() string
}

// NewCustomerRepository returns an empty repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byID:    make(map[string]customer.Customer),
		byEmail: make(map[string]string),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Create stores a copy of c with a fresh ID and creation time.
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(c.Email))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[email]; taken {
		return nil, domain.CustomerEmailTaken(c.Email)
	}

	saved := *c
	saved.ID = r.newID()
	saved.CreatedAt = r.now().UTC()
	r.byID[saved.ID] = saved
	r.byEmail[email] = saved.ID

	out := saved
	return &out, nil
}

// Get returns a copy of the customer stored under id.
func (r *CustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, domain.CustomerNotFound(id)
	}
	return &c, nil
}
