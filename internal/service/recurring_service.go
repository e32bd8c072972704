package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/recurring"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

var ErrRuleNotFound = errors.New("recurring rule not found")

type RecurringRule struct {
	ID         uuid.UUID
	Title      string
	Category   string
	Amount     decimal.Decimal
	DayOfMonth int
	Active     bool
	CreatedAt  time.Time
}

type RecurringService struct {
	storage   *storage.Storage
	processor Processor
	cal       calendar.Calendar
}

func NewRecurringService(store *storage.Storage, processor Processor, cal calendar.Calendar) *RecurringService {
	return &RecurringService{storage: store, processor: processor, cal: cal}
}

func (s *RecurringService) CreateRule(ctx context.Context, rule recurring.Rule) (uuid.UUID, error) {
	if err := rule.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	action := &actions.CreateRecurringRule{Rule: rule}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

func (s *RecurringService) ListRules(ctx context.Context, activeOnly bool) ([]RecurringRule, error) {
	rows, err := s.storage.RecurringRules.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	rules := make([]RecurringRule, len(rows))
	for i, r := range rows {
		rules[i] = RecurringRule{
			ID:         r.ID,
			Title:      r.Title,
			Category:   r.Category,
			Amount:     r.Amount,
			DayOfMonth: r.DayOfMonth,
			Active:     r.Active,
			CreatedAt:  r.CreatedAt,
		}
	}
	return rules, nil
}

func (s *RecurringService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	err := s.processor.Process(ctx, &actions.SetRecurringRuleActive{ID: id, Active: active})
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrRuleNotFound
	}
	return err
}

// Apply materializes active rules for the month containing month and returns what was created.
func (s *RecurringService) Apply(ctx context.Context, month time.Time) ([]ledger.Transaction, error) {
	action := &actions.ApplyRecurring{Calendar: s.cal, Month: month}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, recurring.ErrDayOutOfRange) || errors.Is(err, recurring.ErrZeroAmount) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, err
	}
	return action.Created, nil
}
