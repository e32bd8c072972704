package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Transaction ledger.Transaction

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := t.Transaction.Validate(); err != nil {
		return err
	}

	id, err := writer.Transactions.Insert(ctx, toCreate(t.Transaction))
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	t.CreatedID = id
	return nil
}

func toCreate(tx ledger.Transaction) *sqlconfig.TransactionCreate {
	return &sqlconfig.TransactionCreate{
		ID:              tx.ID,
		Title:           tx.Title,
		Category:        tx.Category,
		Amount:          tx.Amount,
		TransactionDate: tx.Date,
	}
}
