package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/budget-insights/internal/agent"
	"github.com/carson-networks/budget-insights/internal/analytics"
	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/forecast"
	"github.com/carson-networks/budget-insights/internal/ingest"
	"github.com/carson-networks/budget-insights/internal/ledger"
)

const (
	formatSimple = "simple"
	formatBank   = "bank"
	topN         = 5
)

var errNoFile = errors.New("insights: --file is required")

// dataset is the parsed input shared by every command.
type dataset struct {
	cal      calendar.Calendar
	currency string
	txs      []ledger.Transaction
}

func load(c *cli.Context) (*dataset, error) {
	path := c.String("file")
	if path == "" {
		return nil, errNoFile
	}
	loc, err := time.LoadLocation(c.String("timezone"))
	if err != nil {
		return nil, fmt.Errorf("insights: timezone: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("insights: open %s: %w", path, err)
	}
	defer f.Close()

	var res ingest.Result
	switch c.String("format") {
	case formatSimple:
		res, err = ingest.ParseSimple(f, loc)
	case formatBank:
		categorizer, lerr := ingest.LoadRules(c.String("rules"))
		if lerr != nil {
			return nil, lerr
		}
		res, err = ingest.ParseBankExport(f, loc, categorizer)
	default:
		return nil, fmt.Errorf("insights: unknown format %q", c.String("format"))
	}
	if err != nil && !errors.Is(err, ingest.ErrNoRows) {
		return nil, err
	}

	if res.Skipped > 0 {
		logrus.WithFields(logrus.Fields{"file": path, "skipped": res.Skipped}).Warn("Insights.Load.SkippedRows")
	}

	return &dataset{
		cal:      calendar.New(loc),
		currency: c.String("currency"),
		txs:      res.Transactions,
	}, nil
}

func (d *dataset) month(c *cli.Context) (time.Time, error) {
	value := c.String("month")
	if value == "" {
		return time.Now().In(d.cal.Location), nil
	}
	month, err := time.ParseInLocation("2006-01", value, d.cal.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("insights: month %q, expected YYYY-MM: %w", value, err)
	}
	return month, nil
}

func dump(c *cli.Context, v any) bool {
	if !c.Bool("dump") {
		return false
	}
	spew.Fdump(c.App.Writer, v)
	return true
}

func questionsAction(c *cli.Context) error {
	questions := agent.Questions()
	if dump(c, questions) {
		return nil
	}
	for _, q := range questions {
		fmt.Fprintf(c.App.Writer, "%-18s %s\n", q.ID, q.Title)
	}
	return nil
}

func askAction(c *cli.Context) error {
	q, err := agent.ParseQuestion(c.Args().First())
	if err != nil {
		return err
	}
	d, err := load(c)
	if err != nil {
		return err
	}
	month, err := d.month(c)
	if err != nil {
		return err
	}

	resp, err := agent.New(d.cal, d.currency).Answer(q, d.txs, month)
	if err != nil {
		return err
	}
	if dump(c, resp) {
		return nil
	}
	fmt.Fprintln(c.App.Writer, resp.Title)
	for _, b := range resp.Bullets {
		fmt.Fprintf(c.App.Writer, "  [%s] %s\n", b.Severity, b.Text)
	}
	return nil
}

func summaryAction(c *cli.Context) error {
	d, err := load(c)
	if err != nil {
		return err
	}
	month, err := d.month(c)
	if err != nil {
		return err
	}

	inMonth := analytics.FilterByMonth(d.cal, d.txs, month)
	totals := analytics.Summarize(inMonth)
	top := analytics.TopCategories(inMonth, topN)
	if dump(c, struct {
		Totals        analytics.Totals
		TopCategories []analytics.CategoryTotal
	}{totals, top}) {
		return nil
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%s: %d transactions\n", d.cal.MonthStart(month).Format("January 2006"), len(inMonth))
	fmt.Fprintf(w, "  income  %s\n", agent.FormatMoney(totals.Income, d.currency))
	fmt.Fprintf(w, "  expense %s\n", agent.FormatMoney(totals.Expense, d.currency))
	fmt.Fprintf(w, "  net     %s\n", agent.FormatMoney(totals.Net(), d.currency))
	for i, ct := range top {
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, ct.Category, agent.FormatMoney(ct.Total, d.currency))
	}
	return nil
}

func forecastAction(c *cli.Context) error {
	lookback := c.Int("lookback")
	if lookback < 1 {
		return fmt.Errorf("insights: lookback must be positive, got %d", lookback)
	}
	d, err := load(c)
	if err != nil {
		return err
	}
	ref, err := d.month(c)
	if err != nil {
		return err
	}

	result := forecast.Calculate(d.cal, d.txs, ref, lookback)
	if dump(c, result) {
		return nil
	}

	w := c.App.Writer
	for _, m := range result.Monthly {
		fmt.Fprintf(w, "  %s income %s expense %s\n", m.Month.Format("2006-01"),
			agent.FormatMoney(m.Income, d.currency), agent.FormatMoney(m.Expense, d.currency))
	}
	fmt.Fprintf(w, "average income  %s\n", agent.FormatMoney(result.AvgIncome, d.currency))
	fmt.Fprintf(w, "average expense %s\n", agent.FormatMoney(result.AvgExpense, d.currency))
	fmt.Fprintf(w, "predicted net   %s\n", agent.FormatMoney(result.PredictedNet(), d.currency))
	return nil
}

func weekdaysAction(c *cli.Context) error {
	d, err := load(c)
	if err != nil {
		return err
	}

	averages := analytics.AverageExpenseByWeekday(d.cal, d.txs)
	split := analytics.WeekendVsWeekday(d.cal, d.txs)
	if dump(c, struct {
		Averages []analytics.DayExpenseStat
		Split    analytics.WeekendSplit
	}{averages, split}) {
		return nil
	}

	w := c.App.Writer
	for _, a := range averages {
		fmt.Fprintf(w, "  %-9s %s\n", a.Weekday, agent.FormatMoney(a.Average, d.currency))
	}
	fmt.Fprintf(w, "weekend %s, weekdays %s (%s)\n",
		agent.FormatMoney(split.Weekend, d.currency), agent.FormatMoney(split.Weekday, d.currency), split.Trend())
	return nil
}
