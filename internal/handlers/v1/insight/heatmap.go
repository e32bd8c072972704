package insight

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/analytics"
	"github.com/carson-networks/budget-insights/internal/logging"
)

type HeatmapDay struct {
	Day       string  `json:"day" doc:"Calendar day as YYYY-MM-DD"`
	Total     string  `json:"total" doc:"Expense magnitude of the day"`
	Intensity float64 `json:"intensity" minimum:"0" maximum:"1" doc:"Total divided by the busiest day's total"`
}

type HeatmapResponse struct {
	Month string       `json:"month"`
	Max   string       `json:"max"`
	Total string       `json:"total"`
	Days  []HeatmapDay `json:"days" doc:"Days with expenses, oldest first"`
}

type HeatmapOutput struct {
	Body HeatmapResponse
}

type heatmapBuilder interface {
	Heatmap(ctx context.Context, month time.Time) (analytics.Heatmap, error)
}

// HeatmapHandler handles GET /v1/insight/heatmap.
type HeatmapHandler struct {
	InsightService heatmapBuilder
	Location       *time.Location
}

func NewHeatmapHandler(svc heatmapBuilder, loc *time.Location) *HeatmapHandler {
	return &HeatmapHandler{InsightService: svc, Location: orUTC(loc)}
}

func (h *HeatmapHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "expense-heatmap",
		Method:      http.MethodGet,
		Path:        "/v1/insight/heatmap",
		Summary:     "Daily expense heatmap",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *HeatmapHandler) handle(ctx context.Context, input *MonthInput) (*HeatmapOutput, error) {
	month, err := parseMonth(input.Month, h.Location)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("heatmapMs")
	heatmap, err := h.InsightService.Heatmap(ctx, month)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to build heatmap", err)
	}

	resp := HeatmapResponse{
		Month: heatmap.Month.Format(monthLayout),
		Max:   money(heatmap.Max),
		Total: money(heatmap.Total),
		Days:  make([]HeatmapDay, len(heatmap.Days)),
	}
	for i, d := range heatmap.Days {
		resp.Days[i] = HeatmapDay{Day: formatDay(d.Day), Total: money(d.Total), Intensity: d.Intensity}
	}
	return &HeatmapOutput{Body: resp}, nil
}
