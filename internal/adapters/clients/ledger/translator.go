package ledger

import (
	"strings"

	"github.com/jsamuelsen11/go-service-errors/internal/domain/account"
)

// ToDomainAccount converts a ledger AccountDTO to a domain Account.
// Currency codes are normalized to upper case.
func ToDomainAccount(dto *AccountDTO) *account.Account {
	return &account.Account{
		ID:         dto.ID,
		CustomerID: dto.CustomerID,
		Balance:    dto.Balance,
		Currency:   strings.ToUpper(dto.Currency),
	}
}

// ToTransferRequest converts a domain Transfer to the ledger request body.
func ToTransferRequest(t *account.Transfer) TransferRequestDTO {
	return TransferRequestDTO{
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Currency:      strings.ToUpper(t.Currency),
	}
}

// ToDomainTransfer converts a booked ledger TransferDTO to a domain Transfer.
func ToDomainTransfer(dto *TransferDTO) *account.Transfer {
	return &account.Transfer{
		ID:            dto.ID,
		FromAccountID: dto.FromAccountID,
		ToAccountID:   dto.ToAccountID,
		Amount:        dto.Amount,
		Currency:      strings.ToUpper(dto.Currency),
	}
}
