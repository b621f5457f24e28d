package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-service-errors/internal/app/fanout"
	"github.com/jsamuelsen11/go-service-errors/internal/domain"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/account"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

var _ ports.AccountService = (*AccountService)(nil)

// AccountService implements ports.AccountService by orchestrating calls to
// the downstream ledger through the LedgerClient port.
type AccountService struct {
	ledger ports.LedgerClient
	logger *slog.Logger
}

// NewAccountService creates an AccountService. A nil logger discards output.
func NewAccountService(ledger ports.LedgerClient, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccountService{ledger: ledger, logger: logger}
}

// GetAccount returns the account with the given ID.
func (s *AccountService) GetAccount(ctx context.Context, id string) (*account.Account, error) {
	return s.ledger.GetAccount(ctx, id)
}

// Transfer validates t, loads both accounts in parallel and checks that the
// source can cover the amount in the transfer's currency before posting.
// The checks run in that order, so a malformed transfer never reaches the
// ledger.
func (s *AccountService) Transfer(ctx context.Context, t *account.Transfer) (*account.Transfer, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, 2, []string{t.FromAccountID, t.ToAccountID}, s.ledger.GetAccount)
	accounts, err := fanout.Values(results)
	if err != nil {
		return nil, err
	}
	from, to := accounts[0], accounts[1]

	for _, a := range []*account.Account{from, to} {
		if err := a.CheckCurrency(t.Currency); err != nil {
			return nil, err
		}
	}
	if !from.CanCover(t.Amount) {
		return nil, domain.InsufficientFunds(from.ID, t.Amount, from.Balance)
	}

	posted, err := s.ledger.PostTransfer(ctx, t)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "transfer posted",
		slog.String("transfer_id", posted.ID),
		slog.String("from", posted.FromAccountID),
		slog.String("to", posted.ToAccountID),
	)
	return posted, nil
}
