package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/analytics"
	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

const DefaultLookback = 6

// MonthBucket is the income and expense of one lookback month.
type MonthBucket struct {
	Month   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

func (b MonthBucket) Net() decimal.Decimal {
	return b.Income.Sub(b.Expense)
}

// Result predicts next-period totals from the lookback months.
// Monthly always holds one entry per lookback month, oldest first, including empty months.
type Result struct {
	AvgIncome  decimal.Decimal
	AvgExpense decimal.Decimal
	Monthly    []MonthBucket
}

func (r Result) PredictedNet() decimal.Decimal {
	return r.AvgIncome.Sub(r.AvgExpense)
}

// Calculate averages income and expense over the lookback months preceding ref's month.
// Months without income (or without expense) do not count toward that average.
// It panics if lookback is negative.
func Calculate(cal calendar.Calendar, txs []ledger.Transaction, ref time.Time, lookback int) Result {
	months := cal.LastNMonths(lookback, ref)

	monthly := make([]MonthBucket, 0, len(months))
	incomes := make([]decimal.Decimal, 0, len(months))
	expenses := make([]decimal.Decimal, 0, len(months))
	for _, month := range months {
		totals := analytics.Summarize(analytics.FilterByMonth(cal, txs, month))
		monthly = append(monthly, MonthBucket{Month: month, Income: totals.Income, Expense: totals.Expense})
		incomes = append(incomes, totals.Income)
		expenses = append(expenses, totals.Expense)
	}

	return Result{
		AvgIncome:  analytics.AverageNonZero(incomes),
		AvgExpense: analytics.AverageNonZero(expenses),
		Monthly:    monthly,
	}
}
