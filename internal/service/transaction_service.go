package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor Processor
}

func NewTransactionService(store *storage.Storage, processor Processor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

func prepare(tx ledger.Transaction) (ledger.Transaction, error) {
	if tx.ID.IsNil() {
		id, err := uuid.NewV4()
		if err != nil {
			return tx, err
		}
		tx.ID = id
	}
	if err := tx.Validate(); err != nil {
		return tx, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return tx, nil
}

// CreateTransaction stores one transaction and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx ledger.Transaction) (uuid.UUID, error) {
	tx, err := prepare(tx)
	if err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateTransaction{Transaction: tx}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// ImportTransactions stores a batch atomically. Nothing is written when any row is invalid.
func (s *TransactionService) ImportTransactions(ctx context.Context, txs []ledger.Transaction) ([]uuid.UUID, error) {
	if len(txs) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, actions.ErrEmptyImport)
	}

	prepared := make([]ledger.Transaction, len(txs))
	for i, tx := range txs {
		p, err := prepare(tx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		prepared[i] = p
	}

	action := &actions.ImportTransactions{Transactions: prepared}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.CreatedIDs, nil
}

// ListTransactions returns a page of transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	snapshot := time.Now().UTC().Truncate(time.Second).Add(time.Second)
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	filter := &sqlconfig.TransactionFilter{
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		// The first page has no upper bound; later pages exclude rows inserted after it was read.
		cursorMaxCreationTime := snapshot
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = fromRow(row)
	}

	return convertedTransactions, nextCursor, nil
}

// AllTransactions loads the snapshot the analytics run on, oldest first.
// Nil bounds are open; To is exclusive.
func (s *TransactionService) AllTransactions(ctx context.Context, from, to *time.Time) ([]ledger.Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		From:        from,
		To:          to,
		OldestFirst: true,
	})
	if err != nil {
		return nil, err
	}

	txs := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = fromRow(row).Ledger()
	}
	return txs, nil
}
