// Package insight exposes the read-only analytics endpoints.
package insight

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/analytics"
	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/service"
)

const monthLayout = "2006-01"

// Totals is the API model for income and expense sums. Expense is a positive magnitude.
type Totals struct {
	Income  string `json:"income" doc:"Summed income"`
	Expense string `json:"expense" doc:"Summed expense magnitude"`
	Net     string `json:"net" doc:"Income minus expense"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func fromTotals(t analytics.Totals) Totals {
	return Totals{Income: money(t.Income), Expense: money(t.Expense), Net: money(t.Net())}
}

// Weekday is a Sunday-first weekday number with its English name.
type Weekday struct {
	Number int    `json:"number" minimum:"1" maximum:"7" doc:"1 = Sunday ... 7 = Saturday"`
	Name   string `json:"name" doc:"English weekday name"`
}

func fromWeekday(w calendar.Weekday) Weekday {
	return Weekday{Number: int(w), Name: w.String()}
}

func formatDay(t time.Time) string {
	return t.Format(time.DateOnly)
}

// parseMonth reads a YYYY-MM value in loc. An empty value resolves to the current month.
func parseMonth(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Now().In(loc), nil
	}
	month, err := time.ParseInLocation(monthLayout, value, loc)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid month, expected YYYY-MM", err)
	}
	return month, nil
}

func serviceError(msg string, err error) error {
	if errors.Is(err, service.ErrInvalidInput) {
		return huma.NewError(http.StatusBadRequest, msg, err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
