package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("sqlconfig: row not found")

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	Title           string          `db:"title"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	ID              uuid.UUID // generated if nil
	Title           string
	Category        string
	Amount          decimal.Decimal
	TransactionDate time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions.
// From is inclusive and To is exclusive on the transaction date.
type TransactionFilter struct {
	From            *time.Time
	To              *time.Time
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
	OldestFirst     bool
}

// ITransactionTable defines the interface for transaction storage operations.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
