package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carson-networks/budget-insights/internal/agent"
	"github.com/carson-networks/budget-insights/internal/analytics"
	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/forecast"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

const (
	summaryTopCategories = 5
	maxLookback          = 36
)

type transactionLoader interface {
	AllTransactions(ctx context.Context, from, to *time.Time) ([]ledger.Transaction, error)
}

// InsightService loads a snapshot from storage and runs the analytics engine on it.
type InsightService struct {
	loader   transactionLoader
	agent    *agent.Agent
	cal      calendar.Calendar
	lookback int
}

func NewInsightService(loader transactionLoader, a *agent.Agent, cal calendar.Calendar, lookback int) *InsightService {
	if lookback < 1 {
		lookback = forecast.DefaultLookback
	}
	return &InsightService{loader: loader, agent: a, cal: cal, lookback: lookback}
}

func (s *InsightService) Calendar() calendar.Calendar {
	return s.cal
}

func (s *InsightService) Questions() []agent.QuestionInfo {
	return agent.Questions()
}

// Ask answers q against every stored transaction.
func (s *InsightService) Ask(ctx context.Context, q agent.Question, referenceMonth time.Time) (agent.Response, error) {
	if !q.Valid() {
		return agent.Response{}, fmt.Errorf("%w: %w", ErrInvalidInput, agent.ErrUnknownQuestion)
	}

	txs, err := s.loader.AllTransactions(ctx, nil, nil)
	if err != nil {
		return agent.Response{}, err
	}

	resp, err := s.agent.Answer(q, txs, referenceMonth)
	if errors.Is(err, agent.ErrUnknownQuestion) {
		return agent.Response{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return resp, err
}

func (s *InsightService) monthRange(month time.Time) (time.Time, time.Time) {
	from := s.cal.MonthStart(month)
	return from, s.cal.AddMonths(from, 1)
}

type MonthSummary struct {
	Month         time.Time
	Count         int
	Totals        analytics.Totals
	TopCategories []analytics.CategoryTotal
	Categories    []analytics.CategoryBucket
	Days          []analytics.Bucket
}

func (s *InsightService) MonthSummary(ctx context.Context, month time.Time) (MonthSummary, error) {
	from, to := s.monthRange(month)
	txs, err := s.loader.AllTransactions(ctx, &from, &to)
	if err != nil {
		return MonthSummary{}, err
	}
	txs = analytics.FilterByMonth(s.cal, txs, from)

	return MonthSummary{
		Month:         from,
		Count:         len(txs),
		Totals:        analytics.Summarize(txs),
		TopCategories: analytics.TopCategories(txs, summaryTopCategories),
		Categories:    analytics.GroupByCategory(txs),
		Days:          analytics.GroupByDay(s.cal, txs),
	}, nil
}

// Forecast averages the lookback months before ref. A lookback of zero uses the configured default.
func (s *InsightService) Forecast(ctx context.Context, ref time.Time, lookback int) (forecast.Result, error) {
	if lookback == 0 {
		lookback = s.lookback
	}
	if lookback < 1 || lookback > maxLookback {
		return forecast.Result{}, fmt.Errorf("%w: lookback must be within 1..%d, got %d", ErrInvalidInput, maxLookback, lookback)
	}

	to := s.cal.MonthStart(ref)
	from := s.cal.AddMonths(to, -lookback)
	txs, err := s.loader.AllTransactions(ctx, &from, &to)
	if err != nil {
		return forecast.Result{}, err
	}
	return forecast.Calculate(s.cal, txs, ref, lookback), nil
}

type WeekdayReport struct {
	Averages []analytics.DayExpenseStat
	Risky    *analytics.DayExpenseStat
	Worst    *analytics.DayTotal
	Split    analytics.WeekendSplit
}

// WeekdayReport covers every stored transaction.
func (s *InsightService) WeekdayReport(ctx context.Context) (WeekdayReport, error) {
	txs, err := s.loader.AllTransactions(ctx, nil, nil)
	if err != nil {
		return WeekdayReport{}, err
	}

	report := WeekdayReport{
		Averages: analytics.AverageExpenseByWeekday(s.cal, txs),
		Split:    analytics.WeekendVsWeekday(s.cal, txs),
	}
	if risky, ok := analytics.RiskyWeekday(s.cal, txs); ok {
		report.Risky = &risky
	}
	if worst, ok := analytics.WorstSpendingDay(s.cal, txs); ok {
		report.Worst = &worst
	}
	return report, nil
}

func (s *InsightService) Heatmap(ctx context.Context, month time.Time) (analytics.Heatmap, error) {
	from, to := s.monthRange(month)
	txs, err := s.loader.AllTransactions(ctx, &from, &to)
	if err != nil {
		return analytics.Heatmap{}, err
	}
	return analytics.DailyExpenses(s.cal, txs, from), nil
}

func (s *InsightService) Plan(ctx context.Context, month time.Time, plan analytics.Plan) (analytics.PlanComparison, error) {
	if plan.TotalExpense.IsNegative() {
		return analytics.PlanComparison{}, fmt.Errorf("%w: planned total must not be negative", ErrInvalidInput)
	}
	for category, amount := range plan.Categories {
		if amount.IsNegative() {
			return analytics.PlanComparison{}, fmt.Errorf("%w: planned amount for %q must not be negative", ErrInvalidInput, category)
		}
	}

	from, to := s.monthRange(month)
	txs, err := s.loader.AllTransactions(ctx, &from, &to)
	if err != nil {
		return analytics.PlanComparison{}, err
	}
	return analytics.ComparePlan(s.cal, txs, from, plan), nil
}
