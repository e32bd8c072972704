package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

// DayExpenseStat is the mean absolute expense of one weekday.
type DayExpenseStat struct {
	Weekday calendar.Weekday
	Average decimal.Decimal
}

// DayTotal is the summed expense of one calendar day.
type DayTotal struct {
	Day   time.Time
	Total decimal.Decimal
}

type Trend int

const (
	TrendInsufficient Trend = iota
	TrendPositive
	TrendWarning
)

func (t Trend) String() string {
	switch t {
	case TrendPositive:
		return "positive"
	case TrendWarning:
		return "warning"
	default:
		return "insufficient"
	}
}

// WeekendSplit partitions expense totals by weekend (Sunday, Saturday) and weekday.
type WeekendSplit struct {
	Weekend decimal.Decimal
	Weekday decimal.Decimal
}

func (s WeekendSplit) Trend() Trend {
	switch {
	case s.Weekend.IsZero() && s.Weekday.IsZero():
		return TrendInsufficient
	case s.Weekend.GreaterThan(s.Weekday):
		return TrendWarning
	default:
		return TrendPositive
	}
}

// AverageExpenseByWeekday averages expense magnitudes per weekday.
// Weekdays without expenses are left out.
func AverageExpenseByWeekday(cal calendar.Calendar, txs []ledger.Transaction) []DayExpenseStat {
	buckets := GroupByWeekday(cal, expensesOnly(txs))
	stats := make([]DayExpenseStat, 0, len(buckets))
	for _, b := range buckets {
		stats = append(stats, DayExpenseStat{
			Weekday: b.Weekday,
			Average: b.Expense.Div(decimal.NewFromInt(int64(b.Count))),
		})
	}
	return stats
}

// WorstSpendingDay finds the day with the largest summed expense.
// The earliest day wins a tie. ok is false when there are no expenses.
func WorstSpendingDay(cal calendar.Calendar, txs []ledger.Transaction) (worst DayTotal, ok bool) {
	for _, b := range GroupByDay(cal, expensesOnly(txs)) {
		if !ok || b.Expense.GreaterThan(worst.Total) {
			worst = DayTotal{Day: b.Key, Total: b.Expense}
			ok = true
		}
	}
	return worst, ok
}

// RiskyWeekday returns the weekday with the highest average expense.
func RiskyWeekday(cal calendar.Calendar, txs []ledger.Transaction) (risky DayExpenseStat, ok bool) {
	for _, stat := range AverageExpenseByWeekday(cal, txs) {
		if !ok || stat.Average.GreaterThan(risky.Average) {
			risky = stat
			ok = true
		}
	}
	return risky, ok
}

func WeekendVsWeekday(cal calendar.Calendar, txs []ledger.Transaction) WeekendSplit {
	split := WeekendSplit{Weekend: decimal.Zero, Weekday: decimal.Zero}
	for _, tx := range expensesOnly(txs) {
		if cal.Weekday(tx.Date).IsWeekend() {
			split.Weekend = split.Weekend.Add(tx.Amount.Abs())
		} else {
			split.Weekday = split.Weekday.Add(tx.Amount.Abs())
		}
	}
	return split
}

// AverageNonZero averages the strictly positive values and returns zero when there are none.
// A zero month counts as missing data, not as a data point.
func AverageNonZero(values []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	n := 0
	for _, v := range values {
		if v.IsPositive() {
			sum = sum.Add(v)
			n++
		}
	}
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n)))
}
