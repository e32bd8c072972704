package insight

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/forecast"
	"github.com/carson-networks/budget-insights/internal/logging"
)

type ForecastInput struct {
	Ref      string `query:"ref" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Reference month as YYYY-MM, defaults to the current month"`
	Lookback int    `query:"lookback" minimum:"0" maximum:"36" doc:"Number of prior months to average, 0 uses the server default"`
}

type ForecastMonth struct {
	Month   string `json:"month" doc:"Month as YYYY-MM"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

type ForecastResponse struct {
	AvgIncome    string          `json:"avgIncome" doc:"Mean income of months with income"`
	AvgExpense   string          `json:"avgExpense" doc:"Mean expense of months with expenses"`
	PredictedNet string          `json:"predictedNet"`
	Monthly      []ForecastMonth `json:"monthly" doc:"One entry per lookback month, oldest first"`
}

type ForecastOutput struct {
	Body ForecastResponse
}

type forecaster interface {
	Forecast(ctx context.Context, ref time.Time, lookback int) (forecast.Result, error)
}

// ForecastHandler handles GET /v1/insight/forecast.
type ForecastHandler struct {
	InsightService forecaster
	Location       *time.Location
}

func NewForecastHandler(svc forecaster, loc *time.Location) *ForecastHandler {
	return &ForecastHandler{InsightService: svc, Location: orUTC(loc)}
}

func (h *ForecastHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "forecast",
		Method:      http.MethodGet,
		Path:        "/v1/insight/forecast",
		Summary:     "Forecast next month",
		Description: "Predicts income and expense from the months before the reference month.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *ForecastHandler) handle(ctx context.Context, input *ForecastInput) (*ForecastOutput, error) {
	ref, err := parseMonth(input.Ref, h.Location)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("forecastMs")
	result, err := h.InsightService.Forecast(ctx, ref, input.Lookback)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to forecast", err)
	}

	resp := ForecastResponse{
		AvgIncome:    money(result.AvgIncome),
		AvgExpense:   money(result.AvgExpense),
		PredictedNet: money(result.PredictedNet()),
		Monthly:      make([]ForecastMonth, len(result.Monthly)),
	}
	for i, m := range result.Monthly {
		resp.Monthly[i] = ForecastMonth{
			Month:   m.Month.Format(monthLayout),
			Income:  money(m.Income),
			Expense: money(m.Expense),
			Net:     money(m.Net()),
		}
	}
	return &ForecastOutput{Body: resp}, nil
}
