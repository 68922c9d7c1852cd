package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-coach/internal/config"
	"github.com/carson-networks/budget-coach/internal/storage/csvfile"
	"github.com/carson-networks/budget-coach/internal/storage/profile"
	"github.com/carson-networks/budget-coach/internal/storage/sqlconfig"
	"github.com/carson-networks/budget-coach/internal/storage/transaction"
)

// Storage is the read side of the configured backend. Writes go through
// Write so they can run inside a database transaction.
type Storage struct {
	Transactions transaction.ITransactionTable
	Profiles     profile.IProfileTable

	begin func(ctx context.Context) (*Writer, error)
	close func() error
}

func NewStorage(env *config.Config) (*Storage, error) {
	if env.StorageBackend == config.BackendPostgres {
		return newPostgresStorage(env)
	}

	store, err := csvfile.Open(env.DataDir)
	if err != nil {
		return nil, err
	}
	return &Storage{
		Transactions: store.Transactions(),
		Profiles:     store.Profiles(),
	}, nil
}

func newPostgresStorage(env *config.Config) (*Storage, error) {
	sqlDB, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db := bob.NewDB(sqlDB)
	return &Storage{
		Transactions: sqlconfig.NewTransactionsTable(db),
		Profiles:     sqlconfig.NewProfileTable(db),
		begin: func(ctx context.Context) (*Writer, error) {
			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				return nil, err
			}
			return &Writer{
				Transactions: sqlconfig.NewTransactionsTable(tx),
				Profiles:     sqlconfig.NewProfileTable(tx),
				commit:       tx.Commit,
				rollback:     tx.Rollback,
			}, nil
		},
		close: sqlDB.Close,
	}, nil
}

// Write starts a unit of work. The flat file backend has no transactions;
// its Writer writes straight through and each call replaces one file
// atomically.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if s.begin == nil {
		return &Writer{Transactions: s.Transactions, Profiles: s.Profiles}, nil
	}
	return s.begin(ctx)
}

func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
