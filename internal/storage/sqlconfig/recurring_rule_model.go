package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// RecurringRule represents a recurring_rules record.
type RecurringRule struct {
	ID         uuid.UUID       `db:"id"`
	Title      string          `db:"title"`
	Category   string          `db:"category"`
	Amount     decimal.Decimal `db:"amount"`
	DayOfMonth int             `db:"day_of_month"`
	Active     bool            `db:"active"`
	CreatedAt  time.Time       `db:"created_at"`
}

type RecurringRuleCreate struct {
	Title      string
	Category   string
	Amount     decimal.Decimal
	DayOfMonth int
	Active     bool
}

// IRecurringRuleTable defines the interface for recurring rule storage operations.
//
//go:generate mockery --name IRecurringRuleTable --output mock_IRecurringRuleTable.go
type IRecurringRuleTable interface {
	Insert(ctx context.Context, create *RecurringRuleCreate) (uuid.UUID, error)
	List(ctx context.Context, activeOnly bool) ([]*RecurringRule, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
