package ledger

// AccountDTO matches the ledger API's Account schema.
type AccountDTO struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	Balance    float64 `json:"balance"`
	Currency   string  `json:"currency"`
}

// TransferRequestDTO matches the ledger API's CreateTransferRequest schema.
type TransferRequestDTO struct {
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// TransferDTO matches the ledger API's Transfer schema.
type TransferDTO struct {
	ID            string  `json:"id"`
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status,omitempty"`
}
