package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/storage"
)

var ErrEmptyImport = errors.New("import contains no transactions")

// ImportTransactions inserts a batch. Any failing row fails the whole batch,
// which the operator then rolls back.
type ImportTransactions struct {
	Transactions []ledger.Transaction

	CreatedIDs []uuid.UUID
}

func (a *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(a.Transactions) == 0 {
		return ErrEmptyImport
	}
	for i, tx := range a.Transactions {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	ids := make([]uuid.UUID, 0, len(a.Transactions))
	for i, tx := range a.Transactions {
		id, err := writer.Transactions.Insert(ctx, toCreate(tx))
		if err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	a.CreatedIDs = ids
	return nil
}
