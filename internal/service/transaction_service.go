package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-coach/internal/categorize"
	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/ingest"
	"github.com/carson-networks/budget-coach/internal/logging"
	"github.com/carson-networks/budget-coach/internal/operator/actions"
	"github.com/carson-networks/budget-coach/internal/storage"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage     *storage.Storage
	operator    processor
	categorizer *categorize.Categorizer
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op processor, categorizer *categorize.Categorizer) *TransactionService {
	return &TransactionService{storage: store, operator: op, categorizer: categorizer}
}

// ImportCSV parses a bank CSV, categorizes it and replaces the stored set.
func (s *TransactionService) ImportCSV(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	result, err := ingest.ReadCSV(r)
	if err != nil {
		return nil, err
	}
	return s.replace(ctx, result)
}

// ImportPDF is ImportCSV for text-based PDF statements.
func (s *TransactionService) ImportPDF(ctx context.Context, r io.ReaderAt, size int64) (*ImportSummary, error) {
	result, err := ingest.ReadPDF(r, size)
	if err != nil {
		return nil, err
	}
	return s.replace(ctx, result)
}

func (s *TransactionService) replace(ctx context.Context, result *ingest.ImportResult) (*ImportSummary, error) {
	if len(result.Transactions) == 0 {
		return nil, ingest.ErrNoTransactions
	}

	txs := result.Transactions
	s.categorizer.CategorizeAll(txs)

	if err := s.operator.Process(ctx, &actions.ImportTransactions{Transactions: txs}); err != nil {
		return nil, err
	}

	summary := &ImportSummary{
		Imported:     len(txs),
		Skipped:      result.Skipped,
		ByCategory:   make(map[string]int),
		Transactions: txs,
	}
	for _, tx := range txs {
		summary.ByCategory[tx.Category]++
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("imported", summary.Imported)
		logData.AddData("skipped", summary.Skipped)
	}
	return summary, nil
}

// ListTransactions returns a page of transactions matching filter, ordered by
// date.
func (s *TransactionService) ListTransactions(ctx context.Context, filter TransactionFilter, cursor *TransactionCursor) ([]finance.Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = min(cursor.Limit, maxLimit)
		}
		offset = cursor.Position
	}

	storageFilter := &transaction.TransactionFilter{}
	if filter.Period != "" {
		if _, err := time.Parse(finance.PeriodLayout, filter.Period); err != nil {
			return nil, nil, ErrInvalidPeriod
		}
		storageFilter.Period = &filter.Period
	}
	if filter.Category != "" {
		storageFilter.Category = &filter.Category
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}
	if offset >= len(rows) {
		return nil, nil, nil
	}

	rows = rows[offset:]
	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransactionCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	return toFinance(rows), nextCursor, nil
}

// AllTransactions returns the stored set ordered by date.
func (s *TransactionService) AllTransactions(ctx context.Context) ([]finance.Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return toFinance(rows), nil
}

// Recategorize sets the category of one transaction by hand. An empty
// category hands the transaction back to the keyword rules.
func (s *TransactionService) Recategorize(ctx context.Context, id uuid.UUID, category string) (*finance.Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tx := row.ToFinance()

	action := &actions.RecategorizeTransaction{ID: id, Category: category, Overridden: true}
	if category == "" {
		action.Category = s.categorizer.Categorize(tx.Description, tx.Amount, tx.Type)
		action.Overridden = false
	} else if !s.categorizer.Known(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	tx.Category = action.Category
	tx.Overridden = action.Overridden
	return &tx, nil
}

// ExportCSV writes the stored set in the schema ImportCSV reads back.
func (s *TransactionService) ExportCSV(ctx context.Context, w io.Writer) error {
	txs, err := s.AllTransactions(ctx)
	if err != nil {
		return err
	}
	return ingest.WriteCSV(w, txs)
}

// Categories lists every category name in priority order.
func (s *TransactionService) Categories() []string {
	return s.categorizer.Categories()
}

func toFinance(rows []*transaction.Transaction) []finance.Transaction {
	out := make([]finance.Transaction, len(rows))
	for i, row := range rows {
		out[i] = row.ToFinance()
	}
	return out
}
