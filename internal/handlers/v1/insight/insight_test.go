package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/agent"
	"github.com/carson-networks/budget-insights/internal/analytics"
	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/forecast"
	"github.com/carson-networks/budget-insights/internal/service"
)

type mockInsightService struct {
	mock.Mock
}

func (m *mockInsightService) Questions() []agent.QuestionInfo {
	return m.Called().Get(0).([]agent.QuestionInfo)
}

func (m *mockInsightService) Ask(ctx context.Context, q agent.Question, ref time.Time) (agent.Response, error) {
	args := m.Called(ctx, q, ref)
	return args.Get(0).(agent.Response), args.Error(1)
}

func (m *mockInsightService) MonthSummary(ctx context.Context, month time.Time) (service.MonthSummary, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(service.MonthSummary), args.Error(1)
}

func (m *mockInsightService) Forecast(ctx context.Context, ref time.Time, lookback int) (forecast.Result, error) {
	args := m.Called(ctx, ref, lookback)
	return args.Get(0).(forecast.Result), args.Error(1)
}

func (m *mockInsightService) WeekdayReport(ctx context.Context) (service.WeekdayReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.WeekdayReport), args.Error(1)
}

func (m *mockInsightService) Heatmap(ctx context.Context, month time.Time) (analytics.Heatmap, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(analytics.Heatmap), args.Error(1)
}

func (m *mockInsightService) Plan(ctx context.Context, month time.Time, plan analytics.Plan) (analytics.PlanComparison, error) {
	args := m.Called(ctx, month, plan)
	return args.Get(0).(analytics.PlanComparison), args.Error(1)
}

var zone = time.FixedZone("UTC+2", 2*60*60)

func newTestAPI(t *testing.T, svc *mockInsightService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListQuestionsHandler(svc).Register(api)
	NewAskHandler(svc, zone).Register(api)
	NewMonthSummaryHandler(svc, zone).Register(api)
	NewForecastHandler(svc, zone).Register(api)
	NewWeekdayReportHandler(svc).Register(api)
	NewHeatmapHandler(svc, zone).Register(api)
	NewPlanHandler(svc, zone).Register(api)
	return api
}

func june() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, zone)
}

func decode(t *testing.T, resp *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestParseMonth(t *testing.T) {
	month, err := parseMonth("2025-06", zone)
	require.NoError(t, err)
	assert.True(t, month.Equal(june()))
	assert.Equal(t, zone, month.Location())

	now, err := parseMonth("", zone)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)

	_, err = parseMonth("2025-13", zone)
	assert.Error(t, err)
}

func TestHTTP_ListQuestions(t *testing.T) {
	svc := new(mockInsightService)
	svc.On("Questions").Return(agent.Questions())

	resp := newTestAPI(t, svc).Get("/v1/insight/questions")

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Questions []Question `json:"questions"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Questions, 8)
	assert.Equal(t, "monthlySummary", body.Questions[0].ID)
	assert.NotEmpty(t, body.Questions[0].Title)
}

func TestHTTP_Ask_Success(t *testing.T) {
	svc := new(mockInsightService)
	svc.On("Ask", mock.Anything, agent.Warnings, mock.MatchedBy(func(ref time.Time) bool {
		return ref.Equal(june())
	})).Return(agent.Response{
		Title:   "Warnings",
		Bullets: []agent.Bullet{{Text: "Spending exceeds income.", Severity: agent.Warning}},
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/insight/ask", AskBody{Question: "warnings", Month: "2025-06"})

	require.Equal(t, http.StatusOK, resp.Code)
	var body AskResponse
	decode(t, resp, &body)
	assert.Equal(t, "warnings", body.Question)
	assert.Equal(t, "Warnings", body.Title)
	assert.Equal(t, []Bullet{{Text: "Spending exceeds income.", Severity: "warning"}}, body.Bullets)
	svc.AssertExpectations(t)
}

func TestHTTP_Ask_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body AskBody
		code int
	}{
		{"unknown question", AskBody{Question: "whatever"}, http.StatusBadRequest},
		{"missing question", AskBody{}, http.StatusUnprocessableEntity},
		{"malformed month", AskBody{Question: "warnings", Month: "June"}, http.StatusUnprocessableEntity},
		{"month out of range", AskBody{Question: "warnings", Month: "2025-13"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockInsightService)
			resp := newTestAPI(t, svc).Post("/v1/insight/ask", tt.body)
			assert.Equal(t, tt.code, resp.Code)
			svc.AssertNotCalled(t, "Ask")
		})
	}
}

func TestHTTP_Ask_ServiceError(t *testing.T) {
	svc := new(mockInsightService)
	svc.On("Ask", mock.Anything, mock.Anything, mock.Anything).
		Return(agent.Response{}, errors.New("database unavailable"))

	resp := newTestAPI(t, svc).Post("/v1/insight/ask", AskBody{Question: "monthlySummary"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_MonthSummary(t *testing.T) {
	svc := new(mockInsightService)
	svc.On("MonthSummary", mock.Anything, mock.MatchedBy(func(m time.Time) bool {
		return m.Equal(june())
	})).Return(service.MonthSummary{
		Month: june(),
		Count: 2,
		Totals: analytics.Totals{
			Income:  decimal.NewFromInt(1000),
			Expense: decimal.RequireFromString("250.5"),
		},
		TopCategories: []analytics.CategoryTotal{{Category: "Housing", Total: decimal.RequireFromString("250.5")}},
		Days: []analytics.Bucket{{
			Key:    time.Date(2025, time.June, 3, 0, 0, 0, 0, zone),
			Count:  2,
			Totals: analytics.Totals{Income: decimal.NewFromInt(1000), Expense: decimal.RequireFromString("250.5")},
		}},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/insight/summary?month=2025-06")

	require.Equal(t, http.StatusOK, resp.Code)
	var body MonthSummaryResponse
	decode(t, resp, &body)
	assert.Equal(t, "2025-06", body.Month)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, Totals{Income: "1000.00", Expense: "250.50", Net: "749.50"}, body.Totals)
	assert.Equal(t, []CategoryTotal{{Category: "Housing", Total: "250.50"}}, body.TopCategories)
	require.Len(t, body.Days, 1)
	assert.Equal(t, "2025-06-03", body.Days[0].Day)
	assert.Empty(t, body.Categories)
	svc.AssertExpectations(t)
}

func TestHTTP_MonthSummary_InvalidMonth(t *testing.T) {
	svc := new(mockInsightService)

	resp := newTestAPI(t, svc).Get("/v1/insight/summary?month=202506")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "MonthSummary")
}

func TestHTTP_Forecast(t *testing.T) {
	svc := new(mockInsightService)
	svc.On("Forecast", mock.Anything, mock.MatchedBy(func(ref time.Time) bool {
		return ref.Equal(june())
	}), 2).Return(forecast.Result{
		AvgIncome:  decimal.NewFromInt(2000),
		AvgExpense: decimal.NewFromInt(1500),
		Monthly: []forecast.MonthBucket{
			{Month: time.Date(2025, time.April, 1, 0, 0, 0, 0, zone), Income: decimal.NewFromInt(2000), Expense: decimal.NewFromInt(1500)},
			{Month: time.Date(2025, time.May, 1, 0, 0, 0, 0, zone), Income: decimal.Zero, Expense: decimal.Zero},
		},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/insight/forecast?ref=2025-06&lookback=2")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ForecastResponse
	decode(t, resp, &body)
	assert.Equal(t, "2000.00", body.AvgIncome)
	assert.Equal(t, "1500.00", body.AvgExpense)
	assert.Equal(t, "500.00", body.PredictedNet)
	require.Len(t, body.Monthly, 2)
	assert.Equal(t, ForecastMonth{Month: "2025-05", Income: "0.00", Expense: "0.00", Net: "0.00"}, body.Monthly[1])
	svc.AssertExpectations(t)
}

func TestHTTP_Forecast_Errors(t *testing.T) {
	t.Run("lookback above schema maximum", func(t *testing.T) {
		svc := new(mockInsightService)
		resp := newTestAPI(t, svc).Get("/v1/insight/forecast?lookback=99")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		svc.AssertNotCalled(t, "Forecast")
	})

	t.Run("invalid input from service", func(t *testing.T) {
		svc := new(mockInsightService)
		svc.On("Forecast", mock.Anything, mock.Anything, 0).
			Return(forecast.Result{}, fmt.Errorf("%w: lookback", service.ErrInvalidInput))
		resp := newTestAPI(t, svc).Get("/v1/insight/forecast")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHTTP_WeekdayReport(t *testing.T) {
	risky := analytics.DayExpenseStat{Weekday: calendar.Saturday, Average: decimal.NewFromInt(15)}
	worst := analytics.DayTotal{Day: time.Date(2025, time.June, 2, 0, 0, 0, 0, zone), Total: decimal.NewFromInt(80)}

	svc := new(mockInsightService)
	svc.On("WeekdayReport", mock.Anything).Return(service.WeekdayReport{
		Averages: []analytics.DayExpenseStat{
			{Weekday: calendar.Monday, Average: decimal.NewFromInt(10)},
			risky,
		},
		Risky: &risky,
		Worst: &worst,
		Split: analytics.WeekendSplit{Weekend: decimal.NewFromInt(30), Weekday: decimal.NewFromInt(80)},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/insight/weekdays")

	require.Equal(t, http.StatusOK, resp.Code)
	var body WeekdayReportResponse
	decode(t, resp, &body)
	require.Len(t, body.Averages, 2)
	assert.Equal(t, Weekday{Number: 2, Name: "Monday"}, body.Averages[0].Weekday)
	require.NotNil(t, body.Risky)
	assert.Equal(t, Weekday{Number: 7, Name: "Saturday"}, body.Risky.Weekday)
	assert.Equal(t, "15.00", body.Risky.Average)
	require.NotNil(t, body.Worst)
	assert.Equal(t, "2025-06-02", body.Worst.Day)
	assert.Equal(t, "positive", body.Split.Trend)
}

func TestHTTP_WeekdayReport_NoExpenses(t *testing.T) {
	svc := new(mockInsightService)
	svc.On("WeekdayReport", mock.Anything).Return(service.WeekdayReport{}, nil)

	resp := newTestAPI(t, svc).Get("/v1/insight/weekdays")

	require.Equal(t, http.StatusOK, resp.Code)
	var body WeekdayReportResponse
	decode(t, resp, &body)
	assert.Empty(t, body.Averages)
	assert.Nil(t, body.Risky)
	assert.Nil(t, body.Worst)
	assert.Equal(t, "insufficient", body.Split.Trend)
}

func TestHTTP_Heatmap(t *testing.T) {
	svc := new(mockInsightService)
	svc.On("Heatmap", mock.Anything, mock.Anything).Return(analytics.Heatmap{
		Month: june(),
		Max:   decimal.NewFromInt(40),
		Total: decimal.NewFromInt(50),
		Days: []analytics.HeatmapDay{
			{Day: time.Date(2025, time.June, 4, 0, 0, 0, 0, zone), Total: decimal.NewFromInt(10), Intensity: 0.25},
			{Day: time.Date(2025, time.June, 9, 0, 0, 0, 0, zone), Total: decimal.NewFromInt(40), Intensity: 1},
		},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/insight/heatmap?month=2025-06")

	require.Equal(t, http.StatusOK, resp.Code)
	var body HeatmapResponse
	decode(t, resp, &body)
	assert.Equal(t, "40.00", body.Max)
	assert.Equal(t, []HeatmapDay{
		{Day: "2025-06-04", Total: "10.00", Intensity: 0.25},
		{Day: "2025-06-09", Total: "40.00", Intensity: 1},
	}, body.Days)
}

func TestHTTP_Plan(t *testing.T) {
	svc := new(mockInsightService)
	svc.On("Plan", mock.Anything, mock.Anything, mock.MatchedBy(func(p analytics.Plan) bool {
		return p.TotalExpense.Equal(decimal.NewFromInt(1000)) &&
			p.Categories["Dining"].Equal(decimal.NewFromInt(100))
	})).Return(analytics.PlanComparison{
		Month:       june(),
		RealExpense: decimal.NewFromInt(1200),
		Planned:     decimal.NewFromInt(1000),
		Rows: []analytics.PlanRow{
			{Category: "Dining", Real: decimal.NewFromInt(150), Planned: decimal.NewFromInt(100)},
		},
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/insight/plan", PlanBody{
		Month:        "2025-06",
		TotalExpense: "1000",
		Categories:   map[string]string{"Dining": "100"},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	var body PlanResponse
	decode(t, resp, &body)
	assert.Equal(t, "-200.00", body.Remaining)
	assert.Equal(t, []PlanRow{{Category: "Dining", Real: "150.00", Planned: "100.00", Over: true}}, body.Rows)
	svc.AssertExpectations(t)
}

func TestHTTP_Plan_Rejected(t *testing.T) {
	t.Run("bad category amount", func(t *testing.T) {
		svc := new(mockInsightService)
		resp := newTestAPI(t, svc).Post("/v1/insight/plan", PlanBody{
			TotalExpense: "1000",
			Categories:   map[string]string{"Dining": "lots"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		svc.AssertNotCalled(t, "Plan")
	})

	t.Run("negative total", func(t *testing.T) {
		svc := new(mockInsightService)
		svc.On("Plan", mock.Anything, mock.Anything, mock.Anything).
			Return(analytics.PlanComparison{}, fmt.Errorf("%w: negative", service.ErrInvalidInput))
		resp := newTestAPI(t, svc).Post("/v1/insight/plan", PlanBody{TotalExpense: "-5"})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}
