package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

const transactionsTable = "transactions"

// Rows per INSERT, well under the Postgres bind parameter limit.
const insertBatchSize = 500

var transactionColumns = []any{"id", "date", "description", "amount", "type", "category", "overridden"}

var _ transaction.ITransactionTable = (*TransactionsTable)(nil)

type transactionRow struct {
	ID          uuid.UUID       `db:"id"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Type        string          `db:"type"`
	Category    string          `db:"category"`
	Overridden  bool            `db:"overridden"`
}

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable accepts a bob.DB or a bob.Tx.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// List returns transactions matching the filter. Nil filter returns all.
func (t *TransactionsTable) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
	}
	if filter != nil {
		if filter.Period != nil {
			start, err := time.Parse(finance.PeriodLayout, *filter.Period)
			if err != nil {
				return nil, fmt.Errorf("parse period %q: %w", *filter.Period, err)
			}
			queryMods = append(queryMods,
				sm.Where(psql.Quote("date").GTE(psql.Arg(start))),
				sm.Where(psql.Quote("date").LT(psql.Arg(start.AddDate(0, 1, 0)))),
			)
		}
		if filter.Category != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("date")).Asc(),
		sm.OrderBy(psql.Quote("seq")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*transaction.Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transaction.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToTransaction(row), nil
}

// ReplaceAll deletes every row and inserts txs. Run it inside a transaction.
func (t *TransactionsTable) ReplaceAll(ctx context.Context, txs []*transaction.Transaction) error {
	if _, err := bob.Exec(ctx, t.exec, psql.Delete(dm.From(transactionsTable))); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}

	for start := 0; start < len(txs); start += insertBatchSize {
		end := min(start+insertBatchSize, len(txs))
		insertMods := []bob.Mod[*dialect.InsertQuery]{
			im.Into(transactionsTable, "id", "date", "description", "amount", "type", "category", "overridden"),
		}
		for _, tx := range txs[start:end] {
			insertMods = append(insertMods, im.Values(psql.Arg(
				tx.ID, tx.Date, tx.Description, tx.Amount, tx.Type, tx.Category, tx.Overridden,
			)))
		}
		if _, err := bob.Exec(ctx, t.exec, psql.Insert(insertMods...)); err != nil {
			return fmt.Errorf("insert transactions: %w", err)
		}
	}
	return nil
}

// UpdateCategory relabels one transaction.
func (t *TransactionsTable) UpdateCategory(ctx context.Context, id uuid.UUID, category string, overridden bool) error {
	q := psql.Update(
		um.Table(transactionsTable),
		um.SetCol("category").ToArg(category),
		um.SetCol("overridden").ToArg(overridden),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}
	return nil
}

func rowToTransaction(row transactionRow) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          row.ID,
		Date:        row.Date.UTC(),
		Description: row.Description,
		Amount:      row.Amount,
		Type:        row.Type,
		Category:    row.Category,
		Overridden:  row.Overridden,
	}
}
