// Package account defines accounts and the transfers between them.
package account

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-service-errors/internal/domain"
)

// CodeCurrencyMismatch is raised when a transfer's currency differs from an
// account's.
var CodeCurrencyMismatch = domain.NewErrorCode("CURRENCY_MISMATCH",
	"Transfer currency does not match the account currency", http.StatusUnprocessableEntity)

// Account holds a balance for one customer in a single currency.
type Account struct {
	ID         string
	CustomerID string
	Balance    float64
	Currency   string
}

// CanCover reports whether the balance covers amount.
func (a *Account) CanCover(amount float64) bool {
	return a.Balance >= amount
}

// Transfer moves Amount from one account to another.
type Transfer struct {
	ID            string
	FromAccountID string
	ToAccountID   string
	Amount        float64
	Currency      string
}

// Validate checks the transfer's shape before any account is consulted.
// Field problems and the same-account rule are reported together.
func (t *Transfer) Validate() error {
	b := domain.ValidationBuilderFor(domain.CodeInvalidTransfer)
	failed := false

	if strings.TrimSpace(t.FromAccountID) == "" {
		b.FieldError("fromAccountId", "is required")
		failed = true
	}
	if strings.TrimSpace(t.ToAccountID) == "" {
		b.FieldError("toAccountId", "is required")
		failed = true
	}
	if t.Amount <= 0 {
		b.FieldError("amount", "must be positive")
		failed = true
	}
	if len(t.Currency) != 3 {
		b.FieldError("currency", "must be a three-letter ISO 4217 code")
		failed = true
	}
	if t.FromAccountID != "" && t.FromAccountID == t.ToAccountID {
		b.GlobalError("source and destination accounts must differ")
		failed = true
	}

	if !failed {
		return nil
	}
	return b.Build()
}

// CheckCurrency returns CURRENCY_MISMATCH unless a is held in currency.
func (a *Account) CheckCurrency(currency string) error {
	if strings.EqualFold(a.Currency, currency) {
		return nil
	}
	return domain.BusinessErrorOf(CodeCurrencyMismatch,
		"accountId", a.ID,
		"accountCurrency", a.Currency,
		"transferCurrency", currency,
	)
}
