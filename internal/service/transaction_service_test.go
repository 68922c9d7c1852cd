package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/ingest"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

// -- ImportCSV tests --

func TestImportCSV_CategorizesAndReplaces(t *testing.T) {
	svc := newTestService(t)
	in := "Date,Description,Amount\n" +
		"2025-01-01,SALARY ACME,50000\n" +
		"2025-01-02,Swiggy order,-450\n" +
		"2025-01-03,Unknown payee XYZ,-99\n" +
		"garbage,row,1\n"

	var stored []*transaction.Transaction
	svc.transactions.EXPECT().ReplaceAll(mock.Anything, mock.Anything).
		Run(func(_ context.Context, rows []*transaction.Transaction) { stored = rows }).
		Return(nil)

	summary, err := svc.Transaction.ImportCSV(context.Background(), strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.ByCategory["Food & Dining"])
	assert.Equal(t, 1, summary.ByCategory[finance.OtherCategory])
	assert.Equal(t, []string{"ImportTransactions"}, svc.processor.performed)

	require.Len(t, stored, 3)
	assert.Equal(t, "Food & Dining", stored[1].Category)
	assert.Equal(t, "Debit", stored[1].Type)
}

func TestImportCSV_BankCategoriesAreRecategorized(t *testing.T) {
	svc := newTestService(t)
	in := "Transaction Date,Description,Category,Type,Amount\n" +
		"2025-01-03,STARBUCKS COFFEE,Food & Drink,Sale,-5.40\n" +
		"2025-01-04,UBER TRIP,Travel,Sale,-12.00\n" +
		"2025-01-05,PAYROLL ACME,Paycheck,Payment,2500.00\n"

	var stored []*transaction.Transaction
	svc.transactions.EXPECT().ReplaceAll(mock.Anything, mock.Anything).
		Run(func(_ context.Context, rows []*transaction.Transaction) { stored = rows }).
		Return(nil)

	summary, err := svc.Transaction.ImportCSV(context.Background(), strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Imported)
	assert.Equal(t, 1, summary.ByCategory["Food & Dining"])
	assert.Equal(t, 1, summary.ByCategory["Transportation"])
	assert.Zero(t, summary.ByCategory["Food & Drink"])

	require.Len(t, stored, 3)
	assert.Equal(t, "Food & Dining", stored[0].Category)
	assert.False(t, stored[0].Overridden)
	assert.Equal(t, "Transportation", stored[1].Category)
	assert.False(t, stored[1].Overridden)
	assert.Equal(t, "Credit", stored[2].Type)
}

func TestImportCSV_BadHeader(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Transaction.ImportCSV(context.Background(), strings.NewReader("a,b\n1,2\n"))

	assert.ErrorIs(t, err, ingest.ErrNoHeader)
	assert.Empty(t, svc.processor.performed)
}

func TestImportCSV_NoUsableRows(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Transaction.ImportCSV(context.Background(), strings.NewReader("date,description,amount\nx,y,z\n"))

	assert.ErrorIs(t, err, ingest.ErrNoTransactions)
}

func TestImportCSV_StorageError(t *testing.T) {
	svc := newTestService(t)
	svc.transactions.EXPECT().ReplaceAll(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.Transaction.ImportCSV(context.Background(), strings.NewReader("date,description,amount\n2025-01-01,x,-1\n"))

	assert.EqualError(t, err, "replace transactions: disk full")
}

// -- ListTransactions tests --

func TestListTransactions_Paginates(t *testing.T) {
	svc := newTestService(t)
	rows := []*transaction.Transaction{
		storedRow("2025-01-01", "a", "-1", "Debit", "Other"),
		storedRow("2025-01-02", "b", "-2", "Debit", "Other"),
		storedRow("2025-01-03", "c", "-3", "Debit", "Other"),
	}
	svc.transactions.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	page, next, err := svc.Transaction.ListTransactions(context.Background(), TransactionFilter{}, &TransactionCursor{Limit: 2})

	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "a", page[0].Description)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.Position)
	assert.Equal(t, 2, next.Limit)

	page, next, err = svc.Transaction.ListTransactions(context.Background(), TransactionFilter{}, next)

	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].Description)
	assert.Nil(t, next)
}

func TestListTransactions_PassesFilter(t *testing.T) {
	svc := newTestService(t)
	svc.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Period != nil && *f.Period == "2025-01" && f.Category != nil && *f.Category == "Shopping"
	})).Return(nil, nil)

	page, next, err := svc.Transaction.ListTransactions(context.Background(), TransactionFilter{Period: "2025-01", Category: "Shopping"}, nil)

	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Nil(t, next)
}

func TestListTransactions_InvalidPeriod(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Transaction.ListTransactions(context.Background(), TransactionFilter{Period: "January"}, nil)

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

// -- Recategorize tests --

func TestRecategorize_Override(t *testing.T) {
	svc := newTestService(t)
	row := storedRow("2025-01-02", "Amazon order", "-900", "Debit", "Shopping")
	svc.transactions.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)
	svc.transactions.EXPECT().UpdateCategory(mock.Anything, row.ID, "Entertainment", true).Return(nil)

	tx, err := svc.Transaction.Recategorize(context.Background(), row.ID, "Entertainment")

	require.NoError(t, err)
	assert.Equal(t, "Entertainment", tx.Category)
	assert.True(t, tx.Overridden)
}

func TestRecategorize_EmptyCategoryRestoresRules(t *testing.T) {
	svc := newTestService(t)
	row := storedRow("2025-01-02", "Swiggy order", "-300", "Debit", "Shopping")
	row.Overridden = true
	svc.transactions.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)
	svc.transactions.EXPECT().UpdateCategory(mock.Anything, row.ID, "Food & Dining", false).Return(nil)

	tx, err := svc.Transaction.Recategorize(context.Background(), row.ID, "")

	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", tx.Category)
	assert.False(t, tx.Overridden)
}

func TestRecategorize_UnknownCategory(t *testing.T) {
	svc := newTestService(t)
	row := storedRow("2025-01-02", "x", "-1", "Debit", "Other")
	svc.transactions.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)

	_, err := svc.Transaction.Recategorize(context.Background(), row.ID, "Yachts")

	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Empty(t, svc.processor.performed)
}

func TestRecategorize_NotFound(t *testing.T) {
	svc := newTestService(t)
	id := uuid.Must(uuid.NewV4())
	svc.transactions.EXPECT().FindByID(mock.Anything, id).Return(nil, transaction.ErrNotFound)

	_, err := svc.Transaction.Recategorize(context.Background(), id, "Shopping")

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

// -- ExportCSV tests --

func TestExportCSV(t *testing.T) {
	svc := newTestService(t)
	rows := []*transaction.Transaction{storedRow("2025-01-02", "Swiggy order", "-300", "Debit", "Food & Dining")}
	svc.transactions.EXPECT().List(mock.Anything, (*transaction.TransactionFilter)(nil)).Return(rows, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.Transaction.ExportCSV(context.Background(), &buf))

	result, err := ingest.ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, rows[0].ID, result.Transactions[0].ID)
	assert.Equal(t, "Food & Dining", result.Transactions[0].Category)
}
