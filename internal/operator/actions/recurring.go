package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/recurring"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

type CreateRecurringRule struct {
	Rule recurring.Rule

	CreatedID uuid.UUID
}

func (a *CreateRecurringRule) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := a.Rule.Validate(); err != nil {
		return err
	}
	id, err := writer.RecurringRules.Insert(ctx, &sqlconfig.RecurringRuleCreate{
		Title:      a.Rule.Title,
		Category:   a.Rule.Category,
		Amount:     a.Rule.Amount,
		DayOfMonth: a.Rule.DayOfMonth,
		Active:     a.Rule.Active,
	})
	if err != nil {
		return fmt.Errorf("insert recurring rule: %w", err)
	}
	a.CreatedID = id
	return nil
}

type SetRecurringRuleActive struct {
	ID     uuid.UUID
	Active bool
}

func (a *SetRecurringRuleActive) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.RecurringRules.SetActive(ctx, a.ID, a.Active)
}

// ApplyRecurring materializes the active rules for Month. Reading the month's
// transactions and inserting the new ones share one storage transaction.
type ApplyRecurring struct {
	Calendar calendar.Calendar
	Month    time.Time

	Created []ledger.Transaction
}

func (a *ApplyRecurring) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.RecurringRules.List(ctx, true)
	if err != nil {
		return fmt.Errorf("list recurring rules: %w", err)
	}
	rules := make([]recurring.Rule, 0, len(rows))
	for _, r := range rows {
		rules = append(rules, recurring.Rule{
			Title:      r.Title,
			Category:   r.Category,
			Amount:     r.Amount,
			DayOfMonth: r.DayOfMonth,
			Active:     r.Active,
		})
	}

	from := a.Calendar.MonthStart(a.Month)
	to := a.Calendar.AddMonths(from, 1)
	existingRows, err := writer.Transactions.List(ctx, &sqlconfig.TransactionFilter{From: &from, To: &to})
	if err != nil {
		return fmt.Errorf("list month transactions: %w", err)
	}
	existing := make([]ledger.Transaction, 0, len(existingRows))
	for _, r := range existingRows {
		existing = append(existing, ledger.Transaction{
			ID:       r.ID,
			Title:    r.Title,
			Category: r.Category,
			Amount:   r.Amount,
			Date:     r.TransactionDate,
		})
	}

	created, err := recurring.Generate(a.Calendar, rules, from, existing)
	if err != nil {
		return err
	}
	for _, tx := range created {
		if _, err := writer.Transactions.Insert(ctx, toCreate(tx)); err != nil {
			return fmt.Errorf("insert recurring transaction: %w", err)
		}
	}
	a.Created = created
	return nil
}
