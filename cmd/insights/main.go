// Command insights answers the fixed finance questions over a CSV export
// without a database.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/budget-insights/internal/forecast"
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "insights",
		Usage:  "offline finance insights over a CSV export",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "CSV file to read", EnvVars: []string{"BUDGET_INSIGHTS_FILE"}},
			&cli.StringFlag{Name: "format", Value: formatSimple, Usage: "CSV dialect: simple or bank"},
			&cli.StringFlag{Name: "timezone", Value: "UTC", Usage: "IANA zone used for month and day buckets"},
			&cli.StringFlag{Name: "currency", Value: "EUR", Usage: "currency code appended to amounts"},
			&cli.StringFlag{Name: "rules", Usage: "YAML categorizer rules for the bank format"},
			&cli.BoolFlag{Name: "dump", Usage: "print the raw result structure"},
		},
		Commands: []*cli.Command{
			{
				Name:   "questions",
				Usage:  "list supported questions",
				Action: questionsAction,
			},
			{
				Name:      "ask",
				Usage:     "answer one question",
				ArgsUsage: "<question>",
				Flags:     []cli.Flag{monthFlag()},
				Action:    askAction,
			},
			{
				Name:   "summary",
				Usage:  "totals and top categories for a month",
				Flags:  []cli.Flag{monthFlag()},
				Action: summaryAction,
			},
			{
				Name:  "forecast",
				Usage: "predict the month after the lookback window",
				Flags: []cli.Flag{
					monthFlag(),
					&cli.IntFlag{Name: "lookback", Value: forecast.DefaultLookback, Usage: "months to average"},
				},
				Action: forecastAction,
			},
			{
				Name:   "weekdays",
				Usage:  "weekday and weekend spending",
				Action: weekdaysAction,
			},
		},
	}
}

func monthFlag() cli.Flag {
	return &cli.StringFlag{Name: "month", Aliases: []string{"m"}, Usage: "reference month as YYYY-MM, defaults to now"}
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("insights")
	}
}
