package service

import (
	"context"
	"errors"

	"github.com/carson-networks/budget-insights/internal/agent"
	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
)

// ErrInvalidInput marks errors caused by the caller's data rather than by storage.
var ErrInvalidInput = errors.New("invalid input")

// Processor runs write actions. *operator.OperatorDelegator implements it.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type Options struct {
	Calendar calendar.Calendar
	Currency string
	Lookback int
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Insight     *InsightService
	Recurring   *RecurringService
}

// NewService creates a new Service with the given storage and write processor.
func NewService(store *storage.Storage, processor Processor, opts Options) *Service {
	transactions := NewTransactionService(store, processor)
	return &Service{
		Transaction: transactions,
		Insight:     NewInsightService(transactions, agent.New(opts.Calendar, opts.Currency), opts.Calendar, opts.Lookback),
		Recurring:   NewRecurringService(store, processor, opts.Calendar),
	}
}
