package insight

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

type WeekdayAverage struct {
	Weekday Weekday `json:"weekday"`
	Average string  `json:"average" doc:"Mean expense magnitude"`
}

type WorstDay struct {
	Day   string `json:"day" doc:"Calendar day as YYYY-MM-DD"`
	Total string `json:"total"`
}

type WeekendSplit struct {
	Weekend string `json:"weekend" doc:"Expense on Saturdays and Sundays"`
	Weekday string `json:"weekday" doc:"Expense on Monday to Friday"`
	Trend   string `json:"trend" enum:"insufficient,positive,warning"`
}

type WeekdayReportResponse struct {
	Averages []WeekdayAverage `json:"averages" doc:"Weekdays with expenses, Sunday first"`
	Risky    *WeekdayAverage  `json:"risky,omitempty" doc:"Weekday with the highest average, absent without expenses"`
	Worst    *WorstDay        `json:"worst,omitempty" doc:"Day with the highest total, absent without expenses"`
	Split    WeekendSplit     `json:"split"`
}

type WeekdayReportOutput struct {
	Body WeekdayReportResponse
}

type weekdayReporter interface {
	WeekdayReport(ctx context.Context) (service.WeekdayReport, error)
}

// WeekdayReportHandler handles GET /v1/insight/weekdays.
type WeekdayReportHandler struct {
	InsightService weekdayReporter
}

func NewWeekdayReportHandler(svc weekdayReporter) *WeekdayReportHandler {
	return &WeekdayReportHandler{InsightService: svc}
}

func (h *WeekdayReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "weekday-report",
		Method:      http.MethodGet,
		Path:        "/v1/insight/weekdays",
		Summary:     "Weekday spending",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *WeekdayReportHandler) handle(ctx context.Context, _ *struct{}) (*WeekdayReportOutput, error) {
	stopTimer := logging.GetLogData(ctx).AddTiming("weekdayReportMs")
	report, err := h.InsightService.WeekdayReport(ctx)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to build weekday report", err)
	}

	resp := WeekdayReportResponse{
		Averages: make([]WeekdayAverage, len(report.Averages)),
		Split: WeekendSplit{
			Weekend: money(report.Split.Weekend),
			Weekday: money(report.Split.Weekday),
			Trend:   report.Split.Trend().String(),
		},
	}
	for i, a := range report.Averages {
		resp.Averages[i] = WeekdayAverage{Weekday: fromWeekday(a.Weekday), Average: money(a.Average)}
	}
	if report.Risky != nil {
		resp.Risky = &WeekdayAverage{Weekday: fromWeekday(report.Risky.Weekday), Average: money(report.Risky.Average)}
	}
	if report.Worst != nil {
		resp.Worst = &WorstDay{Day: formatDay(report.Worst.Day), Total: money(report.Worst.Total)}
	}
	return &WeekdayReportOutput{Body: resp}, nil
}
