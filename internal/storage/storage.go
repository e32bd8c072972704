package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

type Storage struct {
	DB             *sql.DB
	Transactions   sqlconfig.ITransactionTable
	RecurringRules sqlconfig.IRecurringRuleTable

	bobDB bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	return NewStorageFromDB(db), nil
}

func NewStorageFromDB(db *sql.DB) *Storage {
	return &Storage{
		DB:             db,
		Transactions:   sqlconfig.NewTransactionsTable(db),
		RecurringRules: sqlconfig.NewRecurringRulesTable(db),
		bobDB:          bob.NewDB(db),
	}
}

// Write opens a transaction and returns a Writer whose tables run inside it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: begin: %w", err)
	}
	return NewWriter(ctx, tx,
		sqlconfig.NewTransactionsTableWithExecutor(tx),
		sqlconfig.NewRecurringRulesTableWithExecutor(tx),
	), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
