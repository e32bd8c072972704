package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

func TestAverageExpenseByWeekday(t *testing.T) {
	cal := calendar.UTC()
	txs := []ledger.Transaction{
		tx("A", "-10", day(2025, 6, 7)), // Saturday
		tx("B", "-20", day(2025, 6, 14)), // Saturday
		tx("C", "-9", day(2025, 6, 2)), // Monday
		tx("D", "500", day(2025, 6, 3)), // Tuesday income only
	}

	stats := AverageExpenseByWeekday(cal, txs)
	require.Len(t, stats, 2)
	assert.Equal(t, calendar.Monday, stats[0].Weekday)
	assert.True(t, stats[0].Average.Equal(dec("9")))
	assert.Equal(t, calendar.Saturday, stats[1].Weekday)
	assert.True(t, stats[1].Average.Equal(dec("15")))
}

func TestWorstSpendingDay(t *testing.T) {
	cal := calendar.UTC()
	txs := []ledger.Transaction{
		tx("A", "-10", time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)),
		tx("B", "-70", time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC)),
		tx("C", "-75", day(2025, 6, 4)),
		tx("D", "900", day(2025, 6, 5)),
	}

	worst, ok := WorstSpendingDay(cal, txs)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), worst.Day)
	assert.True(t, worst.Total.Equal(dec("80")))
}

func TestWorstSpendingDay_TieKeepsEarliest(t *testing.T) {
	cal := calendar.UTC()
	txs := []ledger.Transaction{
		tx("A", "-50", day(2025, 6, 9)),
		tx("B", "-50", day(2025, 6, 2)),
	}

	worst, ok := WorstSpendingDay(cal, txs)
	require.True(t, ok)
	assert.Equal(t, 2, worst.Day.Day())
}

func TestWorstSpendingDay_NoExpenses(t *testing.T) {
	_, ok := WorstSpendingDay(calendar.UTC(), nil)
	assert.False(t, ok)

	_, ok = WorstSpendingDay(calendar.UTC(), []ledger.Transaction{tx("Salary", "100", day(2025, 6, 1))})
	assert.False(t, ok)
}

func TestRiskyWeekday_AllSaturday(t *testing.T) {
	cal := calendar.UTC()
	txs := []ledger.Transaction{
		tx("A", "-10", day(2025, 6, 7)),
		tx("B", "-20", day(2025, 6, 14)),
	}

	risky, ok := RiskyWeekday(cal, txs)
	require.True(t, ok)
	assert.Equal(t, calendar.Weekday(7), risky.Weekday)
	assert.True(t, risky.Average.Equal(dec("15")))
}

func TestRiskyWeekday_NoData(t *testing.T) {
	_, ok := RiskyWeekday(calendar.UTC(), nil)
	assert.False(t, ok)
}

func TestWeekendVsWeekday(t *testing.T) {
	cal := calendar.UTC()
	txs := []ledger.Transaction{
		tx("A", "-10", day(2025, 6, 1)), // Sunday
		tx("B", "-20", day(2025, 6, 7)), // Saturday
		tx("C", "-5", day(2025, 6, 4)), // Wednesday
		tx("D", "300", day(2025, 6, 8)), // Sunday income
	}

	split := WeekendVsWeekday(cal, txs)
	assert.True(t, split.Weekend.Equal(dec("30")))
	assert.True(t, split.Weekday.Equal(dec("5")))
	assert.Equal(t, TrendWarning, split.Trend())
}

func TestWeekendVsWeekday_PartitionsTotalExpense(t *testing.T) {
	cal := calendar.UTC()
	var txs []ledger.Transaction
	for d := 1; d <= 30; d++ {
		txs = append(txs, tx("Any", decimal.NewFromInt(int64(-d)).String(), day(2025, 6, d)))
	}

	split := WeekendVsWeekday(cal, txs)
	assert.True(t, split.Weekend.Add(split.Weekday).Equal(SumExpense(txs)))
	assert.Equal(t, TrendPositive, split.Trend())
}

func TestWeekendSplit_Trend(t *testing.T) {
	assert.Equal(t, TrendInsufficient, WeekendSplit{Weekend: decimal.Zero, Weekday: decimal.Zero}.Trend())
	assert.Equal(t, TrendPositive, WeekendSplit{Weekend: dec("10"), Weekday: dec("10")}.Trend())
	assert.Equal(t, TrendWarning, WeekendSplit{Weekend: dec("11"), Weekday: dec("10")}.Trend())
	assert.Equal(t, "warning", TrendWarning.String())
}

func TestAverageNonZero(t *testing.T) {
	tests := []struct {
		name   string
		values []decimal.Decimal
		want   string
	}{
		{"excludes zeros", []decimal.Decimal{dec("0"), dec("0"), dec("100"), dec("200")}, "150"},
		{"all zero", []decimal.Decimal{dec("0"), dec("0"), dec("0")}, "0"},
		{"empty", nil, "0"},
		{"negative ignored", []decimal.Decimal{dec("-50"), dec("30")}, "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, AverageNonZero(tt.values).Equal(dec(tt.want)))
		})
	}
}
