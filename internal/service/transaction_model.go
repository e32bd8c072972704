package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	Title           string
	Category        string
	Amount          decimal.Decimal
	TransactionDate time.Time
	CreatedAt       time.Time
}

func (t Transaction) Ledger() ledger.Transaction {
	return ledger.Transaction{
		ID:       t.ID,
		Title:    t.Title,
		Category: t.Category,
		Amount:   t.Amount,
		Date:     t.TransactionDate,
	}
}

func fromRow(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:              row.ID,
		Title:           row.Title,
		Category:        row.Category,
		Amount:          row.Amount,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
