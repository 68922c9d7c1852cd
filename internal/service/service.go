package service

import (
	"context"
	"errors"

	"github.com/carson-networks/budget-coach/internal/categorize"
	"github.com/carson-networks/budget-coach/internal/operator/actions"
	"github.com/carson-networks/budget-coach/internal/storage"
	"github.com/carson-networks/budget-coach/internal/storage/profile"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

var (
	ErrTransactionNotFound = transaction.ErrNotFound
	ErrProfileNotFound     = profile.ErrNotFound
	ErrUnknownCategory     = errors.New("unknown category")
	ErrInvalidPeriod       = errors.New("period must be formatted YYYY-MM")
)

// processor runs write actions one at a time. It is satisfied by
// *operator.OperatorDelegator.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Profile     *ProfileService
	Insight     *InsightService
}

// NewService creates a new Service with the given storage. Reads go straight
// to store; writes are handed to op.
func NewService(store *storage.Storage, op processor, categorizer *categorize.Categorizer, currencySymbol string) *Service {
	return &Service{
		Transaction: NewTransactionService(store, op, categorizer),
		Profile:     NewProfileService(store, op, categorizer),
		Insight:     NewInsightService(store, currencySymbol),
	}
}
