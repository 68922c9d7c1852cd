package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/categorize"
	"github.com/carson-networks/budget-coach/internal/operator/actions"
	"github.com/carson-networks/budget-coach/internal/storage"
	"github.com/carson-networks/budget-coach/internal/storage/profile"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

// inlineProcessor performs actions on the calling goroutine against the same
// mocked tables the service reads from.
type inlineProcessor struct {
	writer    *storage.Writer
	performed []string
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.performed = append(p.performed, action.Name())
	return action.Perform(ctx, p.writer)
}

type testService struct {
	*Service
	transactions *transaction.MockITransactionTable
	profiles     *profile.MockIProfileTable
	processor    *inlineProcessor
}

func newTestService(t *testing.T) *testService {
	t.Helper()
	mockTransactions := transaction.NewMockITransactionTable(t)
	mockProfiles := profile.NewMockIProfileTable(t)
	store := &storage.Storage{Transactions: mockTransactions, Profiles: mockProfiles}
	proc := &inlineProcessor{writer: &storage.Writer{Transactions: mockTransactions, Profiles: mockProfiles}}
	return &testService{
		Service:      NewService(store, proc, categorize.New(categorize.DefaultRules()), "₹"),
		transactions: mockTransactions,
		profiles:     mockProfiles,
		processor:    proc,
	}
}

func storedRow(date, description, amount, typ, category string) *transaction.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return &transaction.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Date:        d,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Type:        typ,
		Category:    category,
	}
}
