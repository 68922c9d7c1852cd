package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/storage"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

// ImportTransactions replaces the stored set with a freshly categorized
// upload.
type ImportTransactions struct {
	Transactions []finance.Transaction
}

func (a *ImportTransactions) Name() string { return "ImportTransactions" }

func (a *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	rows := make([]*transaction.Transaction, len(a.Transactions))
	for i, tx := range a.Transactions {
		rows[i] = transaction.FromFinance(tx.Normalize())
	}
	if err := writer.Transactions.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("replace transactions: %w", err)
	}
	return nil
}
