package ports

import (
	"context"

	"github.com/jsamuelsen11/go-service-errors/internal/domain/account"
)

// LedgerClient defines the client port for the downstream ledger API.
// Implemented by the ledger adapter; called by the application layer.
// Downstream failures are returned as domain errors.
type LedgerClient interface {
	// GetAccount returns the account with the given ID.
	// Returns a business error with code ACCOUNT_NOT_FOUND if it does not exist.
	GetAccount(ctx context.Context, id string) (*account.Account, error)

	// PostTransfer books a transfer and returns it with its ledger ID set.
	// Rejections reported by the ledger keep their downstream error code.
	PostTransfer(ctx context.Context, transfer *account.Transfer) (*account.Transfer, error)
}
