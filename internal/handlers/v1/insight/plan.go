package insight

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/analytics"
	"github.com/carson-networks/budget-insights/internal/logging"
)

type PlanBody struct {
	Month        string            `json:"month,omitempty" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Month as YYYY-MM, defaults to the current month"`
	TotalExpense string            `json:"totalExpense" required:"true" doc:"Planned total expense as a positive decimal"`
	Categories   map[string]string `json:"categories,omitempty" doc:"Planned expense per category"`
}

type PlanInput struct {
	Body PlanBody
}

type PlanRow struct {
	Category string `json:"category"`
	Real     string `json:"real"`
	Planned  string `json:"planned"`
	Over     bool   `json:"over" doc:"Real spending exceeded a nonzero plan"`
}

type PlanResponse struct {
	Month       string    `json:"month"`
	RealExpense string    `json:"realExpense"`
	Planned     string    `json:"planned"`
	Remaining   string    `json:"remaining" doc:"Negative when over the plan"`
	Rows        []PlanRow `json:"rows" doc:"Planned and spent categories, largest real spending first"`
}

type PlanOutput struct {
	Body PlanResponse
}

type planComparer interface {
	Plan(ctx context.Context, month time.Time, plan analytics.Plan) (analytics.PlanComparison, error)
}

// PlanHandler handles POST /v1/insight/plan. The plan is compared, never stored.
type PlanHandler struct {
	InsightService planComparer
	Location       *time.Location
}

func NewPlanHandler(svc planComparer, loc *time.Location) *PlanHandler {
	return &PlanHandler{InsightService: svc, Location: orUTC(loc)}
}

func (h *PlanHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "compare-plan",
		Method:      http.MethodPost,
		Path:        "/v1/insight/plan",
		Summary:     "Compare plan to actual",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func parsePlanInput(input *PlanInput) (analytics.Plan, error) {
	total, err := decimal.NewFromString(input.Body.TotalExpense)
	if err != nil {
		return analytics.Plan{}, huma.NewError(http.StatusBadRequest, "invalid totalExpense", err)
	}
	plan := analytics.Plan{TotalExpense: total, Categories: make(map[string]decimal.Decimal, len(input.Body.Categories))}
	for category, raw := range input.Body.Categories {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return analytics.Plan{}, huma.NewError(http.StatusBadRequest, "invalid amount for category "+category, err)
		}
		plan.Categories[category] = amount
	}
	return plan, nil
}

func (h *PlanHandler) handle(ctx context.Context, input *PlanInput) (*PlanOutput, error) {
	month, err := parseMonth(input.Body.Month, h.Location)
	if err != nil {
		return nil, err
	}
	plan, err := parsePlanInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("comparePlanMs")
	comparison, err := h.InsightService.Plan(ctx, month, plan)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to compare plan", err)
	}

	resp := PlanResponse{
		Month:       comparison.Month.Format(monthLayout),
		RealExpense: money(comparison.RealExpense),
		Planned:     money(comparison.Planned),
		Remaining:   money(comparison.Remaining()),
		Rows:        make([]PlanRow, len(comparison.Rows)),
	}
	for i, r := range comparison.Rows {
		resp.Rows[i] = PlanRow{Category: r.Category, Real: money(r.Real), Planned: money(r.Planned), Over: r.Over()}
	}
	return &PlanOutput{Body: resp}, nil
}
