package insight

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

type MonthInput struct {
	Month string `query:"month" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Month as YYYY-MM, defaults to the current month"`
}

type CategoryTotal struct {
	Category string `json:"category"`
	Total    string `json:"total" doc:"Expense magnitude"`
}

type CategorySummary struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Totals
}

type DaySummary struct {
	Day   string `json:"day" doc:"Calendar day as YYYY-MM-DD"`
	Count int    `json:"count"`
	Totals
}

type MonthSummaryResponse struct {
	Month         string            `json:"month" doc:"Month as YYYY-MM"`
	Count         int               `json:"count" doc:"Number of transactions in the month"`
	Totals        Totals            `json:"totals"`
	TopCategories []CategoryTotal   `json:"topCategories" doc:"Largest expense categories, biggest first"`
	Categories    []CategorySummary `json:"categories" doc:"Every category in first-seen order"`
	Days          []DaySummary      `json:"days" doc:"Days with transactions, oldest first"`
}

type MonthSummaryOutput struct {
	Body MonthSummaryResponse
}

type monthSummarizer interface {
	MonthSummary(ctx context.Context, month time.Time) (service.MonthSummary, error)
}

// MonthSummaryHandler handles GET /v1/insight/summary.
type MonthSummaryHandler struct {
	InsightService monthSummarizer
	Location       *time.Location
}

func NewMonthSummaryHandler(svc monthSummarizer, loc *time.Location) *MonthSummaryHandler {
	return &MonthSummaryHandler{InsightService: svc, Location: orUTC(loc)}
}

func (h *MonthSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "month-summary",
		Method:      http.MethodGet,
		Path:        "/v1/insight/summary",
		Summary:     "Month summary",
		Description: "Totals, categories and daily buckets for one month.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *MonthSummaryHandler) handle(ctx context.Context, input *MonthInput) (*MonthSummaryOutput, error) {
	month, err := parseMonth(input.Month, h.Location)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("monthSummaryMs")
	summary, err := h.InsightService.MonthSummary(ctx, month)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to summarize month", err)
	}

	resp := MonthSummaryResponse{
		Month:         summary.Month.Format(monthLayout),
		Count:         summary.Count,
		Totals:        fromTotals(summary.Totals),
		TopCategories: make([]CategoryTotal, len(summary.TopCategories)),
		Categories:    make([]CategorySummary, len(summary.Categories)),
		Days:          make([]DaySummary, len(summary.Days)),
	}
	for i, ct := range summary.TopCategories {
		resp.TopCategories[i] = CategoryTotal{Category: ct.Category, Total: money(ct.Total)}
	}
	for i, c := range summary.Categories {
		resp.Categories[i] = CategorySummary{Category: c.Category, Count: c.Count, Totals: fromTotals(c.Totals)}
	}
	for i, d := range summary.Days {
		resp.Days[i] = DaySummary{Day: formatDay(d.Key), Count: d.Count, Totals: fromTotals(d.Totals)}
	}
	return &MonthSummaryOutput{Body: resp}, nil
}
