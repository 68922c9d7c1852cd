package csvfile

import (
	"context"
	"fmt"
	"io"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/ingest"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

var _ transaction.ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable stores the transaction set in transactions.csv.
type TransactionsTable struct {
	store *Store
}

// List returns transactions matching the filter. Nil filter returns all.
func (t *TransactionsTable) List(_ context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	all, err := t.load()
	if err != nil {
		return nil, err
	}
	var result []*transaction.Transaction
	for _, tx := range all {
		if filter.Matches(tx) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (t *TransactionsTable) FindByID(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	all, err := t.load()
	if err != nil {
		return nil, err
	}
	for _, tx := range all {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, transaction.ErrNotFound
}

func (t *TransactionsTable) ReplaceAll(_ context.Context, txs []*transaction.Transaction) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	return t.save(txs)
}

func (t *TransactionsTable) UpdateCategory(_ context.Context, id uuid.UUID, category string, overridden bool) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	all, err := t.load()
	if err != nil {
		return err
	}
	for _, tx := range all {
		if tx.ID == id {
			tx.Category = category
			tx.Overridden = overridden
			return t.save(all)
		}
	}
	return transaction.ErrNotFound
}

func (t *TransactionsTable) load() ([]*transaction.Transaction, error) {
	var result *ingest.ImportResult
	_, err := t.store.read(TransactionsFile, func(r io.Reader) error {
		var err error
		result, err = ingest.ReadCSV(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", TransactionsFile, err)
	}
	if result == nil {
		return nil, nil
	}

	out := make([]*transaction.Transaction, len(result.Transactions))
	for i, tx := range result.Transactions {
		out[i] = transaction.FromFinance(tx)
	}
	return out, nil
}

func (t *TransactionsTable) save(txs []*transaction.Transaction) error {
	rows := make([]finance.Transaction, len(txs))
	for i, tx := range txs {
		rows[i] = tx.ToFinance()
	}
	err := t.store.write(TransactionsFile, func(w io.Writer) error {
		return ingest.WriteCSV(w, rows)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", TransactionsFile, err)
	}
	return nil
}
