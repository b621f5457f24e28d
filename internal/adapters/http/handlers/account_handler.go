package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/binding"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

// AccountHandler handles account reads and transfers.
type AccountHandler struct {
	svc  ports.AccountService
	errs ErrorWriter
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc ports.AccountService, errs ErrorWriter) *AccountHandler {
	return &AccountHandler{svc: svc, errs: errs}
}

// GetAccount handles GET /api/v1/accounts/{id}.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	a, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToAccountResponse(a))
}

// Transfer handles POST /api/v1/transfers.
func (h *AccountHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := binding.Bind(w, r, "transferRequest", &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	posted, err := h.svc.Transfer(r.Context(), req.ToTransfer())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTransferResponse(posted))
}
