package transaction

import (
	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/ingest"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Date        string `json:"date" format:"date" doc:"Booking date, YYYY-MM-DD"`
	Description string `json:"description" doc:"Statement narration"`
	Amount      string `json:"amount" doc:"Signed decimal amount, negative for debits"`
	Type        string `json:"type" enum:"Debit,Credit" doc:"Debit or Credit"`
	Category    string `json:"category" doc:"Assigned category"`
	Overridden  bool   `json:"overridden" doc:"True when the category was set by hand"`
}

func fromFinance(tx finance.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Date:        tx.Date.Format(ingest.DateLayout),
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Overridden:  tx.Overridden,
	}
}
