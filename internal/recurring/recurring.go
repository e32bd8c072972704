// Package recurring materializes monthly standing orders into transactions.
package recurring

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

const (
	MinDay = 1
	MaxDay = 28
)

var (
	ErrDayOutOfRange = errors.New("recurring: day of month must be within 1..28")
	ErrZeroAmount    = errors.New("recurring: amount must not be zero")
)

// Rule repeats a transaction on the same day of every month.
type Rule struct {
	Title      string
	Category   string
	Amount     decimal.Decimal
	DayOfMonth int
	Active     bool
}

func (r Rule) Validate() error {
	if r.DayOfMonth < MinDay || r.DayOfMonth > MaxDay {
		return fmt.Errorf("%w: got %d", ErrDayOutOfRange, r.DayOfMonth)
	}
	if r.Amount.IsZero() {
		return ErrZeroAmount
	}
	if r.Title == "" {
		return ledger.ErrEmptyTitle
	}
	if r.Category == "" {
		return ledger.ErrEmptyCategory
	}
	return nil
}

func (r Rule) materializedIn(cal calendar.Calendar, month time.Time, existing []ledger.Transaction) bool {
	for _, t := range existing {
		if cal.SameMonth(t.Date, month) && t.Title == r.Title && t.Amount.Equal(r.Amount) {
			return true
		}
	}
	return false
}

// Generate returns one transaction per active rule for the month containing
// month, dated on the rule's day. Rules that already have a matching
// transaction (same title and amount) in existing for that month are skipped,
// so calling Generate again after saving its output yields nothing.
func Generate(cal calendar.Calendar, rules []Rule, month time.Time, existing []ledger.Transaction) ([]ledger.Transaction, error) {
	start := cal.MonthStart(month)
	out := []ledger.Transaction{}

	for _, r := range rules {
		if !r.Active {
			continue
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("recurring: rule %q: %w", r.Title, err)
		}
		if r.materializedIn(cal, start, existing) || r.materializedIn(cal, start, out) {
			continue
		}

		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("recurring: new id: %w", err)
		}
		tx := ledger.Transaction{
			ID:       id,
			Title:    r.Title,
			Category: r.Category,
			Amount:   r.Amount,
			Date:     start.AddDate(0, 0, r.DayOfMonth-1),
		}
		out = append(out, tx)
	}
	return out, nil
}
