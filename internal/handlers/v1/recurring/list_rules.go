package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/service"
)

type ListRulesInput struct {
	ActiveOnly bool `query:"activeOnly" doc:"Only return active rules"`
}

type ListRulesOutput struct {
	Body struct {
		Rules []Rule `json:"rules"`
	}
}

type ruleLister interface {
	ListRules(ctx context.Context, activeOnly bool) ([]service.RecurringRule, error)
}

// ListRulesHandler handles GET /v1/recurring.
type ListRulesHandler struct {
	RecurringService ruleLister
}

func NewListRulesHandler(svc ruleLister) *ListRulesHandler {
	return &ListRulesHandler{RecurringService: svc}
}

func (h *ListRulesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-recurring-rules",
		Method:      http.MethodGet,
		Path:        "/v1/recurring",
		Summary:     "List recurring rules",
		Tags:        []string{"Recurring"},
	}, h.handle)
}

func (h *ListRulesHandler) handle(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error) {
	rules, err := h.RecurringService.ListRules(ctx, input.ActiveOnly)
	if err != nil {
		return nil, serviceError("failed to list recurring rules", err)
	}

	out := &ListRulesOutput{}
	out.Body.Rules = make([]Rule, len(rules))
	for i, r := range rules {
		out.Body.Rules[i] = fromService(r)
	}
	return out, nil
}
