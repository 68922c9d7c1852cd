package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-coach/internal/storage/profile"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return store
}

func row(date, description, amount, typ, category string) *transaction.Transaction {
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

// -- TransactionsTable tests --

func TestTransactionsTable_EmptyBeforeFirstImport(t *testing.T) {
	table := newTestStore(t).Transactions()

	txs, err := table.List(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func TestTransactionsTable_ReplaceAllAndList(t *testing.T) {
	ctx := context.Background()
	table := newTestStore(t).Transactions()

	salary := row("2025-01-01", "Salary", "50000", "Credit", "Income")
	food := row("2025-01-05", "Swiggy", "-450.25", "Debit", "Food & Dining")
	march := row("2025-03-02", "Uber", "-220", "Debit", "Transportation")
	require.NoError(t, table.ReplaceAll(ctx, []*transaction.Transaction{march, salary, food}))

	all, err := table.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, salary.ID, all[0].ID)
	assert.Equal(t, march.ID, all[2].ID)
	assert.True(t, all[1].Amount.Equal(food.Amount))

	period := "2025-01"
	january, err := table.List(ctx, &transaction.TransactionFilter{Period: &period})
	require.NoError(t, err)
	assert.Len(t, january, 2)

	category := "Food & Dining"
	dining, err := table.List(ctx, &transaction.TransactionFilter{Period: &period, Category: &category})
	require.NoError(t, err)
	require.Len(t, dining, 1)
	assert.Equal(t, food.ID, dining[0].ID)

	require.NoError(t, table.ReplaceAll(ctx, []*transaction.Transaction{march}))
	all, err = table.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTransactionsTable_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	table := newTestStore(t).Transactions()
	gift := row("2025-02-14", "Flowers", "-900", "Debit", "Other")
	require.NoError(t, table.ReplaceAll(ctx, []*transaction.Transaction{gift}))

	require.NoError(t, table.UpdateCategory(ctx, gift.ID, "Shopping", true))

	got, err := table.FindByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", got.Category)
	assert.True(t, got.Overridden)
}

func TestTransactionsTable_NotFound(t *testing.T) {
	ctx := context.Background()
	table := newTestStore(t).Transactions()
	id := uuid.Must(uuid.NewV4())

	_, err := table.FindByID(ctx, id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)

	err = table.UpdateCategory(ctx, id, "Travel", true)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

// -- ProfileTable tests --

func TestProfileTable_PutAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	table := store.Profiles()

	_, err := table.Get(ctx)
	assert.ErrorIs(t, err, profile.ErrNotFound)

	saved := &profile.Profile{
		Income:             decimal.RequireFromString("85000"),
		AgeBand:            "26-35",
		Occupation:         "Engineer",
		SavingsTarget:      decimal.RequireFromString("20000"),
		PriorityCategories: []string{"Travel"},
		CutCostCategories:  []string{"Food & Dining", "Shopping"},
		CreatedAt:          time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:          time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, table.Put(ctx, saved))

	got, err := table.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.Income.Equal(saved.Income))
	assert.True(t, got.SavingsTarget.Equal(saved.SavingsTarget))
	assert.Equal(t, saved.AgeBand, got.AgeBand)
	assert.Equal(t, saved.CutCostCategories, got.CutCostCategories)
	assert.True(t, got.CreatedAt.Equal(saved.CreatedAt))

	saved.Occupation = "Manager"
	require.NoError(t, table.Put(ctx, saved))
	got, err = table.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Manager", got.Occupation)

	_, err = os.Stat(store.path(ProfileFile))
	assert.NoError(t, err)
	leftovers, err := filepath.Glob(filepath.Join(store.dir, "*.tmp"))
	assert.NoError(t, err)
	assert.Empty(t, leftovers)
}
