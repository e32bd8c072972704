package ledger

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle    = errors.New("ledger: title must not be empty")
	ErrEmptyCategory = errors.New("ledger: category must not be empty")
	ErrZeroDate      = errors.New("ledger: date must be set")
)

// Transaction is a dated, signed monetary record.
// A positive Amount is income, a negative Amount is an expense and zero is neither.
type Transaction struct {
	ID       uuid.UUID
	Title    string
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// IsIncome reports whether the transaction adds to income sums.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction adds to expense sums.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// ExpenseMagnitude returns |Amount| for expenses and zero otherwise.
func (t Transaction) ExpenseMagnitude() decimal.Decimal {
	if !t.IsExpense() {
		return decimal.Zero
	}
	return t.Amount.Abs()
}

// Validate checks the fields ingestion must guarantee before a record reaches the engine.
func (t Transaction) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if t.Category == "" {
		return ErrEmptyCategory
	}
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}
