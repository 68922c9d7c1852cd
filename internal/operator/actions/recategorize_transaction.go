package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-coach/internal/storage"
)

// RecategorizeTransaction relabels a single transaction. The rules table is
// never touched.
type RecategorizeTransaction struct {
	ID         uuid.UUID
	Category   string
	Overridden bool
}

func (a *RecategorizeTransaction) Name() string { return "RecategorizeTransaction" }

func (a *RecategorizeTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.UpdateCategory(ctx, a.ID, a.Category, a.Overridden)
}
