package agent

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/analytics"
	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/forecast"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

const (
	DefaultCurrency = "EUR"

	comparisonLookback = 6
	topExpenseLimit    = 5
)

var (
	deviationThreshold = decimal.NewFromInt(15)
	netDeficitShare    = decimal.RequireFromString("0.25")
	hundred            = decimal.NewFromInt(100)
)

type rule func(a *Agent, txs []ledger.Transaction, month time.Time) Response

var rules = map[Question]rule{
	MonthlySummary:    (*Agent).monthlySummary,
	CompareToAverage:  (*Agent).compareToAverage,
	TopExpenses:       (*Agent).topExpenses,
	Warnings:          (*Agent).warnings,
	ForecastNextMonth: (*Agent).forecastNextMonth,
	WorstSpendingDay:  (*Agent).worstSpendingDay,
	RiskyWeekdays:     (*Agent).riskyWeekdays,
	WeekendSpending:   (*Agent).weekendSpending,
}

// Agent answers the fixed question catalog from a transaction snapshot.
// It holds no mutable state and is safe for concurrent use.
type Agent struct {
	cal      calendar.Calendar
	currency string
}

func New(cal calendar.Calendar, currency string) *Agent {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Agent{cal: cal, currency: currency}
}

// Answer applies the rule bound to q. Month-scoped rules use the month containing referenceMonth.
func (a *Agent) Answer(q Question, txs []ledger.Transaction, referenceMonth time.Time) (Response, error) {
	r, ok := rules[q]
	if !ok {
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, string(q))
	}
	if len(txs) == 0 {
		return Empty(), nil
	}
	return r(a, txs, referenceMonth), nil
}

func (a *Agent) money(d decimal.Decimal) string {
	return FormatMoney(d, a.currency)
}

func (a *Agent) emptyForMonth(month time.Time) Response {
	m := a.cal.MonthStart(month)
	return Response{
		Title:   "No data",
		Bullets: []Bullet{info(fmt.Sprintf("You have no transactions in %s %d.", m.Month(), m.Year()))},
	}
}

func (a *Agent) monthlySummary(txs []ledger.Transaction, month time.Time) Response {
	inMonth := analytics.FilterByMonth(a.cal, txs, month)
	if len(inMonth) == 0 {
		return a.emptyForMonth(month)
	}

	totals := analytics.Summarize(inMonth)
	net := totals.Net()
	netSeverity := Positive
	if net.IsNegative() {
		netSeverity = Warning
	}

	bullets := []Bullet{
		info("Income: " + a.money(totals.Income)),
		info("Expenses: " + a.money(totals.Expense)),
		{Text: "Balance: " + a.money(net), Severity: netSeverity},
	}

	switch {
	case totals.IsZero():
		bullets = []Bullet{info("You have no transactions this month yet.")}
	case net.IsNegative():
		bullets = append(bullets, warning("Tip: check \"Biggest expenses\" and pick one or two items to cut."))
	default:
		bullets = append(bullets, positive("Great, keep this pace and the month ends in the black."))
	}

	return Response{Title: "Monthly summary", Bullets: bullets}
}

func (a *Agent) pastExpenseAverage(txs []ledger.Transaction, month time.Time) decimal.Decimal {
	months := a.cal.LastNMonths(comparisonLookback, month)
	expenses := make([]decimal.Decimal, 0, len(months))
	for _, m := range months {
		expenses = append(expenses, analytics.SumExpense(analytics.FilterByMonth(a.cal, txs, m)))
	}
	return analytics.AverageNonZero(expenses)
}

// deviationSeverity classifies a percentage deviation from the average.
// Only deviations strictly beyond the threshold leave the info tier.
func deviationSeverity(diffPct decimal.Decimal) Severity {
	switch {
	case diffPct.GreaterThan(deviationThreshold):
		return Warning
	case diffPct.LessThan(deviationThreshold.Neg()):
		return Positive
	default:
		return Info
	}
}

func (a *Agent) compareToAverage(txs []ledger.Transaction, month time.Time) Response {
	const title = "Compared to average"

	current := analytics.SumExpense(analytics.FilterByMonth(a.cal, txs, month))
	avg := a.pastExpenseAverage(txs, month)

	if current.IsZero() && avg.IsZero() {
		return Response{Title: title, Bullets: []Bullet{
			info("Not enough data to compare yet (no expenses this month or in previous months)."),
		}}
	}

	if avg.IsZero() {
		return Response{Title: title, Bullets: []Bullet{
			info("Current expenses: " + a.money(current)),
			info("There is no average to compare with (previous months have no expenses)."),
		}}
	}

	diffPct := current.Sub(avg).Div(avg).Mul(hundred)

	var text string
	switch {
	case diffPct.Abs().LessThan(decimal.NewFromInt(1)):
		text = "Expenses are roughly at the average."
	case diffPct.IsPositive():
		text = fmt.Sprintf("Expenses are %s %% above the average.", diffPct.StringFixed(0))
	default:
		text = fmt.Sprintf("Expenses are %s %% below the average.", diffPct.Abs().StringFixed(0))
	}

	return Response{Title: title, Bullets: []Bullet{
		info("Current expenses: " + a.money(current)),
		info(fmt.Sprintf("Average (last %d months): %s", comparisonLookback, a.money(avg))),
		{Text: text, Severity: deviationSeverity(diffPct)},
	}}
}

func (a *Agent) topExpenses(txs []ledger.Transaction, month time.Time) Response {
	top := analytics.TopCategories(analytics.FilterByMonth(a.cal, txs, month), topExpenseLimit)
	if len(top) == 0 {
		return a.emptyForMonth(month)
	}

	bullets := make([]Bullet, 0, len(top))
	for _, ct := range top {
		bullets = append(bullets, info(fmt.Sprintf("%s: %s", ct.Category, a.money(ct.Total))))
	}
	return Response{Title: "Biggest expenses", Bullets: bullets}
}

func (a *Agent) warnings(txs []ledger.Transaction, month time.Time) Response {
	inMonth := analytics.FilterByMonth(a.cal, txs, month)
	if len(inMonth) == 0 {
		return a.emptyForMonth(month)
	}

	totals := analytics.Summarize(inMonth)
	income, expense, net := totals.Income, totals.Expense, totals.Net()

	var bullets []Bullet
	if expense.GreaterThan(income) && income.IsPositive() {
		bullets = append(bullets, warning("Expenses exceed income, the balance is negative."))
	}
	if income.IsZero() && expense.IsPositive() {
		bullets = append(bullets, warning("No income this month but there are expenses, check whether an income import is missing."))
	}
	if net.IsNegative() && net.Abs().GreaterThan(netDeficitShare.Mul(decimal.Max(income, decimal.NewFromInt(1)))) {
		bullets = append(bullets, warning("The negative balance is significant (more than about 25% of income)."))
	}
	if top := analytics.TopCategories(inMonth, 1); len(top) == 1 {
		bullets = append(bullets, info(fmt.Sprintf("Your most expensive category is %q: %s.", top[0].Category, a.money(top[0].Total))))
	}

	if len(bullets) == 0 {
		bullets = append(bullets, positive("No significant risks detected."))
	}
	return Response{Title: "Warnings", Bullets: bullets}
}

func (a *Agent) forecastNextMonth(txs []ledger.Transaction, month time.Time) Response {
	const title = "Next month estimate"

	result := forecast.Calculate(a.cal, txs, month, forecast.DefaultLookback)
	if result.AvgExpense.IsZero() {
		return Response{Title: title, Bullets: []Bullet{
			info("Not enough data for an estimate (no expenses in previous months)."),
			info("Tip: import transactions for at least a few months."),
		}}
	}

	return Response{Title: title, Bullets: []Bullet{
		info("Estimated expenses: " + a.money(result.AvgExpense)),
		info(fmt.Sprintf("The estimate is the average of the last %d months, skipping months without data.", forecast.DefaultLookback)),
	}}
}

func (a *Agent) worstSpendingDay(txs []ledger.Transaction, _ time.Time) Response {
	worst, ok := analytics.WorstSpendingDay(a.cal, txs)
	if !ok {
		return Empty()
	}

	return Response{Title: "Worst day", Bullets: []Bullet{
		warning(fmt.Sprintf("You spent the most, %s, on %s.", a.money(worst.Total), worst.Day.Format("Monday, 2 January 2006"))),
	}}
}

func (a *Agent) riskyWeekdays(txs []ledger.Transaction, _ time.Time) Response {
	risky, ok := analytics.RiskyWeekday(a.cal, txs)
	if !ok {
		return Empty()
	}

	return Response{Title: "Risky weekdays", Bullets: []Bullet{
		warning(fmt.Sprintf("You spend the most on %s.", risky.Weekday)),
		info(fmt.Sprintf("Average expense on that day: %s.", a.money(risky.Average))),
	}}
}

func (a *Agent) weekendSpending(txs []ledger.Transaction, _ time.Time) Response {
	const title = "Weekend spending"

	split := analytics.WeekendVsWeekday(a.cal, txs)
	if split.Trend() == analytics.TrendInsufficient {
		return Response{Title: title, Bullets: []Bullet{
			info("Not enough data to compare (no expenses)."),
		}}
	}

	severity := Positive
	tip := "Good, you do not spend more on weekends than during the week."
	if split.Trend() == analytics.TrendWarning {
		severity = Warning
		tip = "Tip: set a fixed weekend limit for fun and eating out."
	}

	return Response{Title: title, Bullets: []Bullet{
		{Text: "Weekend: " + a.money(split.Weekend), Severity: severity},
		info("Weekdays: " + a.money(split.Weekday)),
		{Text: tip, Severity: severity},
	}}
}
