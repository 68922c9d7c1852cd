package storage

import (
	"context"

	"github.com/carson-networks/budget-coach/internal/storage/profile"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

type Writer struct {
	Transactions transaction.ITransactionTable
	Profiles     profile.IProfileTable

	commit   func(context.Context) error
	rollback func(context.Context) error
}

func (w *Writer) Commit() error {
	if w.commit == nil {
		return nil
	}
	return w.commit(context.Background())
}

func (w *Writer) Rollback() error {
	if w.rollback == nil {
		return nil
	}
	return w.rollback(context.Background())
}
