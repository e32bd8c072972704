package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

// Plan is a caller-owned monthly spending plan.
type Plan struct {
	TotalExpense decimal.Decimal
	Categories   map[string]decimal.Decimal
}

type PlanRow struct {
	Category string
	Real     decimal.Decimal
	Planned  decimal.Decimal
}

// Over reports whether real spending exceeded a nonzero plan.
func (r PlanRow) Over() bool {
	return r.Planned.IsPositive() && r.Real.GreaterThan(r.Planned)
}

type PlanComparison struct {
	Month       time.Time
	RealExpense decimal.Decimal
	Planned     decimal.Decimal
	Rows        []PlanRow
}

// Remaining is the planned total minus real spending, negative when over the plan.
func (c PlanComparison) Remaining() decimal.Decimal {
	return c.Planned.Sub(c.RealExpense)
}

// ComparePlan compares the month's real expenses to plan, category by category.
// Rows cover the union of planned and spent categories, largest real spending first.
func ComparePlan(cal calendar.Calendar, txs []ledger.Transaction, month time.Time, plan Plan) PlanComparison {
	inMonth := FilterByMonth(cal, txs, month)
	comparison := PlanComparison{
		Month:       cal.MonthStart(month),
		RealExpense: SumExpense(inMonth),
		Planned:     plan.TotalExpense,
	}

	seen := make(map[string]bool)
	for _, ct := range CategoryExpenses(inMonth) {
		seen[ct.Category] = true
		planned, ok := plan.Categories[ct.Category]
		if !ok {
			planned = decimal.Zero
		}
		comparison.Rows = append(comparison.Rows, PlanRow{Category: ct.Category, Real: ct.Total, Planned: planned})
	}

	var plannedOnly []string
	for category := range plan.Categories {
		if !seen[category] {
			plannedOnly = append(plannedOnly, category)
		}
	}
	sort.Strings(plannedOnly)
	for _, category := range plannedOnly {
		comparison.Rows = append(comparison.Rows, PlanRow{Category: category, Real: decimal.Zero, Planned: plan.Categories[category]})
	}

	sort.SliceStable(comparison.Rows, func(a, b int) bool {
		return comparison.Rows[a].Real.GreaterThan(comparison.Rows[b].Real)
	})
	return comparison
}
