package storage

import (
	"context"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Committer is the part of bob.Tx a Writer needs.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups table access bound to one database transaction.
type Writer struct {
	ctx            context.Context
	tx             Committer
	Transactions   sqlconfig.ITransactionTable
	RecurringRules sqlconfig.IRecurringRuleTable
}

func NewWriter(ctx context.Context, tx Committer, transactions sqlconfig.ITransactionTable, rules sqlconfig.IRecurringRuleTable) *Writer {
	return &Writer{
		ctx:            ctx,
		tx:             tx,
		Transactions:   transactions,
		RecurringRules: rules,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(w.ctx)
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(w.ctx)
}
