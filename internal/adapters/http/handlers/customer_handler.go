// Package handlers provides HTTP request handlers for the service's API endpoints.
// Every failure is handed to an ErrorWriter; handlers never build error
// bodies themselves.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/binding"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

// CustomerHandler handles customer registration and lookup.
type CustomerHandler struct {
	svc  ports.CustomerService
	errs ErrorWriter
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(svc ports.CustomerService, errs ErrorWriter) *CustomerHandler {
	return &CustomerHandler{svc: svc, errs: errs}
}

// RegisterCustomer handles POST /api/v1/customers.
func (h *CustomerHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := binding.Bind(w, r, "createCustomerRequest", &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	created, err := h.svc.Register(r.Context(), req.ToCustomer())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/customers/"+created.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToCustomerResponse(created))
}

// GetCustomer handles GET /api/v1/customers/{id}.
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCustomerResponse(c))
}
