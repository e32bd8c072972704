package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

// HeatmapDay is one day of a monthly expense heatmap.
// Intensity is Total relative to the month's largest day, in [0, 1].
type HeatmapDay struct {
	Day       time.Time
	Total     decimal.Decimal
	Intensity float64
}

type Heatmap struct {
	Month time.Time
	Days  []HeatmapDay
	Max   decimal.Decimal
	Total decimal.Decimal
}

// DailyExpenses builds the expense heatmap of the month containing month.
// Days without expenses are omitted.
func DailyExpenses(cal calendar.Calendar, txs []ledger.Transaction, month time.Time) Heatmap {
	heatmap := Heatmap{Month: cal.MonthStart(month), Max: decimal.Zero, Total: decimal.Zero}

	buckets := GroupByDay(cal, expensesOnly(FilterByMonth(cal, txs, month)))
	for _, b := range buckets {
		heatmap.Total = heatmap.Total.Add(b.Expense)
		if b.Expense.GreaterThan(heatmap.Max) {
			heatmap.Max = b.Expense
		}
	}

	heatmap.Days = make([]HeatmapDay, 0, len(buckets))
	for _, b := range buckets {
		intensity := 0.0
		if heatmap.Max.IsPositive() {
			intensity = b.Expense.Div(heatmap.Max).InexactFloat64()
		}
		heatmap.Days = append(heatmap.Days, HeatmapDay{Day: b.Key, Total: b.Expense, Intensity: intensity})
	}
	return heatmap
}
