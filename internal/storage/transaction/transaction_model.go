package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/finance"
)

// ErrNotFound is returned when no transaction has the requested ID.
var ErrNotFound = errors.New("transaction not found")

// Transaction represents a stored statement line.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        string
	Category    string
	Overridden  bool
}

// TransactionFilter specifies filters for listing transactions. Period is a
// YYYY-MM month.
type TransactionFilter struct {
	Period   *string
	Category *string
}

// Matches reports whether t passes every set filter field. A nil filter
// matches everything.
func (f *TransactionFilter) Matches(t *Transaction) bool {
	if f == nil {
		return true
	}
	if f.Period != nil && t.Date.Format(finance.PeriodLayout) != *f.Period {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	return true
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (flat file or Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	// List returns matching transactions ordered by date. Nil filter returns all.
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	// ReplaceAll swaps the whole stored set for txs.
	ReplaceAll(ctx context.Context, txs []*Transaction) error
	UpdateCategory(ctx context.Context, id uuid.UUID, category string, overridden bool) error
}

func FromFinance(t finance.Transaction) *Transaction {
	return &Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Overridden:  t.Overridden,
	}
}

func (t *Transaction) ToFinance() finance.Transaction {
	typ, _ := finance.ParseTransactionType(t.Type)
	return finance.Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        typ,
		Category:    t.Category,
		Overridden:  t.Overridden,
	}
}
