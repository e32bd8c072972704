package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

// Totals holds the income and expense sums of a set of transactions.
// Expense is stored as a positive magnitude.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// IsZero reports whether nothing was earned or spent.
func (t Totals) IsZero() bool {
	return t.Income.IsZero() && t.Expense.IsZero()
}

func (t *Totals) add(tx ledger.Transaction) {
	switch {
	case tx.IsIncome():
		t.Income = t.Income.Add(tx.Amount)
	case tx.IsExpense():
		t.Expense = t.Expense.Add(tx.Amount.Abs())
	}
}

// Bucket groups transactions under a normalized time key.
type Bucket struct {
	Key   time.Time
	Count int
	Totals
}

// WeekdayBucket groups transactions under a Sunday-first weekday.
type WeekdayBucket struct {
	Weekday calendar.Weekday
	Count   int
	Totals
}

// CategoryBucket groups transactions under their category label.
type CategoryBucket struct {
	Category string
	Count    int
	Totals
}

// CategoryTotal is an expense total for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

func FilterByMonth(cal calendar.Calendar, txs []ledger.Transaction, month time.Time) []ledger.Transaction {
	var out []ledger.Transaction
	for _, tx := range txs {
		if cal.SameMonth(tx.Date, month) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByDateRange keeps transactions dated in [from, to).
func FilterByDateRange(txs []ledger.Transaction, from, to time.Time) []ledger.Transaction {
	var out []ledger.Transaction
	for _, tx := range txs {
		if !tx.Date.Before(from) && tx.Date.Before(to) {
			out = append(out, tx)
		}
	}
	return out
}

func expensesOnly(txs []ledger.Transaction) []ledger.Transaction {
	var out []ledger.Transaction
	for _, tx := range txs {
		if tx.IsExpense() {
			out = append(out, tx)
		}
	}
	return out
}

func Summarize(txs []ledger.Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range txs {
		totals.add(tx)
	}
	return totals
}

// SumIncome sums the amounts of income transactions.
func SumIncome(txs []ledger.Transaction) decimal.Decimal {
	return Summarize(txs).Income
}

// SumExpense sums the absolute amounts of expense transactions.
func SumExpense(txs []ledger.Transaction) decimal.Decimal {
	return Summarize(txs).Expense
}

func Net(txs []ledger.Transaction) decimal.Decimal {
	return Summarize(txs).Net()
}

func groupByTime(txs []ledger.Transaction, key func(time.Time) time.Time) []Bucket {
	index := make(map[time.Time]int)
	var buckets []Bucket
	for _, tx := range txs {
		k := key(tx.Date)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k, Totals: Totals{Income: decimal.Zero, Expense: decimal.Zero}})
		}
		buckets[i].Count++
		buckets[i].add(tx)
	}
	sort.SliceStable(buckets, func(a, b int) bool {
		return buckets[a].Key.Before(buckets[b].Key)
	})
	return buckets
}

// GroupByDay buckets transactions by day start, ascending.
func GroupByDay(cal calendar.Calendar, txs []ledger.Transaction) []Bucket {
	return groupByTime(txs, cal.DayStart)
}

// GroupByMonth buckets transactions by month start, ascending.
func GroupByMonth(cal calendar.Calendar, txs []ledger.Transaction) []Bucket {
	return groupByTime(txs, cal.MonthStart)
}

// GroupByWeekday buckets transactions by weekday, ascending.
func GroupByWeekday(cal calendar.Calendar, txs []ledger.Transaction) []WeekdayBucket {
	var buckets []WeekdayBucket
	index := make(map[calendar.Weekday]int)
	for _, tx := range txs {
		w := cal.Weekday(tx.Date)
		i, ok := index[w]
		if !ok {
			i = len(buckets)
			index[w] = i
			buckets = append(buckets, WeekdayBucket{Weekday: w, Totals: Totals{Income: decimal.Zero, Expense: decimal.Zero}})
		}
		buckets[i].Count++
		buckets[i].add(tx)
	}
	sort.Slice(buckets, func(a, b int) bool {
		return buckets[a].Weekday < buckets[b].Weekday
	})
	return buckets
}

// GroupByCategory buckets transactions by category in first-encountered order.
func GroupByCategory(txs []ledger.Transaction) []CategoryBucket {
	var buckets []CategoryBucket
	index := make(map[string]int)
	for _, tx := range txs {
		i, ok := index[tx.Category]
		if !ok {
			i = len(buckets)
			index[tx.Category] = i
			buckets = append(buckets, CategoryBucket{Category: tx.Category, Totals: Totals{Income: decimal.Zero, Expense: decimal.Zero}})
		}
		buckets[i].Count++
		buckets[i].add(tx)
	}
	return buckets
}

// CategoryExpenses totals expenses per category in first-encountered order.
func CategoryExpenses(txs []ledger.Transaction) []CategoryTotal {
	var totals []CategoryTotal
	for _, b := range GroupByCategory(expensesOnly(txs)) {
		totals = append(totals, CategoryTotal{Category: b.Category, Total: b.Expense})
	}
	return totals
}

// TopCategories returns up to limit expense categories, largest total first.
// Ties keep first-encountered order.
func TopCategories(txs []ledger.Transaction, limit int) []CategoryTotal {
	if limit <= 0 {
		return []CategoryTotal{}
	}

	totals := CategoryExpenses(txs)
	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].Total.GreaterThan(totals[b].Total)
	})
	if len(totals) > limit {
		totals = totals[:limit]
	}
	if totals == nil {
		return []CategoryTotal{}
	}
	return totals
}
